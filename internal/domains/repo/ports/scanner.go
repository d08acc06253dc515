package ports

import "github.com/snapctx/snapctx/internal/domains/repo/domain"

type Scanner interface {
	Scan(root domain.ProjectRoot) (domain.ScanResult, error)
}

// ScannerFactory builds a scanner bound to one set of options.
type ScannerFactory func(opts domain.ScanOptions) Scanner
