// Package manifest reads lists of renames from files.
//
// A manifest is either structured (YAML, TOML, JSON, XML), holding a list of
// {source, target} entries under "renames", or plain text with one rename
// per line:
//
//	# comment
//	old.txt => new.txt
//	photos/IMG_001.jpg	photos/2024-01-01.jpg
//
// The format is chosen from the file extension; anything unknown is text.
package manifest
