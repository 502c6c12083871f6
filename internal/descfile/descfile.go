// Package descfile loads HDR metadata descriptors from YAML files.
//
// Besides the structured form, a file may give mastering display and content light
// values as x265 parameter strings:
//
//	master_display: G(13250,34500)B(7500,3000)R(34000,16000)WP(15635,16450)L(10000000,1)
//	max_cll: 1000,400
//	ambient_viewing:
//	  illuminance: 314
//	  light: {x: 0.3127, y: 0.329}
package descfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vearutop/edrmeta"
	"gopkg.in/yaml.v3"
)

type document struct {
	edrmeta.HDRMetadata `yaml:",inline"`

	MasterDisplay string `yaml:"master_display,omitempty"`
	MaxCLL        string `yaml:"max_cll,omitempty"`
}

// Parse decodes a YAML descriptor document and validates it.
func Parse(data []byte) (edrmeta.HDRMetadata, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return edrmeta.HDRMetadata{}, fmt.Errorf("decode descriptor: %w", err)
	}

	h := doc.HDRMetadata
	if doc.MasterDisplay != "" {
		if h.MasteringDisplay != nil {
			return h, errors.New("both mastering_display and master_display are set")
		}
		m, err := edrmeta.ParseMasterDisplay(doc.MasterDisplay)
		if err != nil {
			return h, err
		}
		h.MasteringDisplay = &m
	}
	if doc.MaxCLL != "" {
		if h.ContentLight != nil {
			return h, errors.New("both content_light and max_cll are set")
		}
		c, err := edrmeta.ParseMaxCLL(doc.MaxCLL)
		if err != nil {
			return h, err
		}
		h.ContentLight = &c
	}

	if err := h.Validate(); err != nil {
		return h, err
	}

	return h, nil
}

// Load reads and parses a descriptor file.
func Load(path string) (edrmeta.HDRMetadata, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return edrmeta.HDRMetadata{}, err
	}

	h, err := Parse(data)
	if err != nil {
		return h, fmt.Errorf("%s: %w", path, err)
	}

	return h, nil
}
