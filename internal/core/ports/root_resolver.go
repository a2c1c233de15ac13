package ports

// RootResolver defines the interface for locating the package root of a target directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=root_resolver.go -destination=mocks/mock_root_resolver.go -package=mocks
type RootResolver interface {
	// Resolve returns the absolute package root for target.
	// A non-empty override is validated instead of searched for.
	Resolve(target, override string) (string, error)
}
