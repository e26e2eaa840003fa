// Package corpus loads test corpora and normalizes them into the
// letter alphabet the codecs operate on.
package corpus

import "io/fs"

// File is a named corpus member.
type File struct {
	Name string
	Data []byte
}

// Files loads all regular files of the corpus file system.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Normalize maps at most max bytes of data into the seed alphabet of
// the lzw package: letters are upper-cased and every other byte
// becomes the word separator '_'.
func Normalize(data []byte, max int) string {
	if len(data) > max {
		data = data[:max]
	}
	p := make([]byte, len(data))
	for i, c := range data {
		switch {
		case 'a' <= c && c <= 'z':
			p[i] = c - 'a' + 'A'
		case 'A' <= c && c <= 'Z':
			p[i] = c
		default:
			p[i] = '_'
		}
	}
	return string(p)
}
