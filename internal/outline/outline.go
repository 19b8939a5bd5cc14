// Package outline produces the raw course outline the model builder
// consumes, either from a YAML outline file or from interactive prompts.
package outline

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deslni01/markdown-course-setup/internal/course"
)

// Load reads a YAML outline document:
//
//	number: 1
//	title: example course
//	short_title: BDSA 3134
//	sections:
//	  - title: course overview
//	    subsections:
//	      - introduction
//	      - foundations of this topic
//
// Titles are raw; casing and slugging happen in the model builder.
func Load(r io.Reader) (course.Outline, error) {
	var o course.Outline

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return course.Outline{}, fmt.Errorf("parsing outline: %w", err)
	}
	return o, nil
}

// LoadFile reads a YAML outline from disk.
func LoadFile(path string) (course.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return course.Outline{}, fmt.Errorf("opening outline: %w", err)
	}
	defer f.Close()

	o, err := Load(f)
	if err != nil {
		return course.Outline{}, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}
