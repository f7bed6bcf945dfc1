package ucdblocks

import "os"

// FromFile reads a local Blocks.txt and parses it into a block table.
// Read and parse failures alike are wrapped in a *FileError naming the path,
// with the original cause chained.
func FromFile(path string) (*BlockTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		T().Errorf("cannot read %q: %v", path, err)
		return nil, &FileError{Path: path, cause: err}
	}
	table, err := Parse(string(data))
	if err != nil {
		return nil, &FileError{Path: path, cause: err}
	}
	return table, nil
}
