package project

// ProjectProfileV1 is the v1 contract for project classification output.
type ProjectProfileV1 struct {
	RootPath string `json:"rootPath"`
	Name     string `json:"name"`
	Type     string `json:"type"`             // Rust | JavaScript | Python | Unknown
	Marker   string `json:"marker,omitempty"` // marker basename that decided Type
}
