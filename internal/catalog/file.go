package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type catalogFile struct {
	Sessions []Session `yaml:"sessions" validate:"required,min=1,dive"`
}

// LoadFile reads sessions from a YAML document of the form
//
//	sessions:
//	  - area: Redes de computo
//	    instructor: Prof. Beatriz Alfaro
//	    date: "2025-05-20"
//	    start_time: 10:00AM
//	    end_time: 2:00PM
//
// Every field of every session is required. JSON documents with the same
// shape are accepted as well.
func LoadFile(path string) ([]Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("catalog %s: %s failed %q", path, verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return f.Sessions, nil
}
