package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "stampd":
		return stampdTemplate, nil
	case "stampctl":
		return stampctlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const stampdTemplate = `name = "stampd"
addr = ":9300"
cors_origins = ["http://localhost:3000"]
default_format = "%Y-%m-%d %H:%M:%S.%ms"
render_location = "UTC"
metrics = true
`

const stampctlTemplate = `format = "%Y-%m-%d %H:%M:%S.%ms"
offset = 0
verbose = false
`
