package ports

// AssetScanner defines the interface for enumerating candidate sprite files.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type AssetScanner interface {
	// Scan returns the sorted paths of all PNG files below dir whose parent directory is Default.
	Scan(dir string) ([]string, error)
}
