package domain

// Output is one generated file, named relative to the target directory.
type Output struct {
	Name    string
	Content []byte
}
