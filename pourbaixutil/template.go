/*
Copyright © 2024 the Pourbaix authors.
This file is part of Pourbaix.

Pourbaix is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Pourbaix is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Pourbaix.  If not, see <http://www.gnu.org/licenses/>.
*/

package pourbaixutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
)

const configHeader = `# Configuration file for pourbaix, created with 'pourbaix config'.
# Run 'pourbaix help <command>' for a description of each option.
# Options can be overridden with command-line flags or with environment
# variables in the format POURBAIX_<option>.

`

// configValues returns the value of every option in cfg, with dotted
// names split into nested tables.
func configValues(cfg *viper.Viper) (map[string]interface{}, error) {
	o := make(map[string]interface{})
	for _, opt := range options {
		if opt.name == "config" {
			continue
		}
		var v interface{}
		switch opt.defaultVal.(type) {
		case string:
			v = cfg.GetString(opt.name)
		case []string:
			v = cfg.GetStringSlice(opt.name)
		case bool:
			v = cfg.GetBool(opt.name)
		case float64:
			v = cfg.GetFloat64(opt.name)
		case map[string]string:
			m, err := GetStringMapString(opt.name, cfg)
			if err != nil {
				return nil, err
			}
			v = m
		default:
			return nil, fmt.Errorf("pourbaix: invalid type for option %s", opt.name)
		}
		parts := strings.Split(opt.name, ".")
		table := o
		for _, p := range parts[:len(parts)-1] {
			sub, ok := table[p].(map[string]interface{})
			if !ok {
				sub = make(map[string]interface{})
				table[p] = sub
			}
			table = sub
		}
		table[parts[len(parts)-1]] = v
	}
	return o, nil
}

// WriteConfig writes the current value of every option in cfg to w in
// TOML format.
func WriteConfig(w io.Writer, cfg *viper.Viper) error {
	vals, err := configValues(cfg)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, configHeader); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(vals); err != nil {
		return fmt.Errorf("pourbaix: writing configuration: %v", err)
	}
	return nil
}
