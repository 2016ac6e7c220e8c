// File: security/policy.go
// Package security: the YAML-backed policy table.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Rules are matched per kind by the longest target prefix; a target
// with no matching rule is denied. Example file:
//
//	policies:
//	  - kind: file
//	    target: /tmp/
//	    allow: [read, write]
//	  - kind: console
//	    target: ""
//	    allow: [write]

package security

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type policyFile struct {
	Policies []policyRule `yaml:"policies"`
}

type policyRule struct {
	Kind   string   `yaml:"kind"`
	Target string   `yaml:"target"`
	Allow  []string `yaml:"allow"`
}

// FilePolicy is a PolicyTable built from declarative rules.
type FilePolicy struct {
	rules []rule
}

type rule struct {
	kind   string
	prefix string
	access Access
}

// LoadPolicy reads a YAML policy file.
func LoadPolicy(path string) (*FilePolicy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("security: read policy: %w", err)
	}
	return ParsePolicy(raw)
}

// ParsePolicy builds a policy table from YAML bytes.
func ParsePolicy(raw []byte) (*FilePolicy, error) {
	var pf policyFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("security: parse policy: %w", err)
	}
	fp := &FilePolicy{}
	for _, pr := range pf.Policies {
		var acc Access
		for _, a := range pr.Allow {
			switch a {
			case "read":
				acc.Read = true
			case "write":
				acc.Write = true
			case "execute":
				acc.Execute = true
			default:
				return nil, fmt.Errorf("security: unknown access %q", a)
			}
		}
		fp.rules = append(fp.rules, rule{kind: pr.Kind, prefix: pr.Target, access: acc})
	}
	return fp, nil
}

// Lookup implements PolicyTable: the longest matching target prefix
// among the kind's rules wins; no match denies.
func (fp *FilePolicy) Lookup(kind, target string) Access {
	best := -1
	var acc Access
	for _, r := range fp.rules {
		if r.kind != kind {
			continue
		}
		if !strings.HasPrefix(target, r.prefix) {
			continue
		}
		if len(r.prefix) > best {
			best = len(r.prefix)
			acc = r.access
		}
	}
	if best < 0 {
		return Access{}
	}
	return acc
}
