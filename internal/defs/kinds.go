// internal/defs/kinds.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// KindDefinition holds all the static data for a turret kind.
// Definitions are shared by pointer between turrets and must not be mutated
// after the catalog is built.
type KindDefinition struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Level     int     `json:"level"`
	Attack    int     `json:"attack"`
	MovePower int     `json:"move_power,omitempty"`
	Range     float64 `json:"range"`
	Sprite    string  `json:"sprite"`
}

// Validate checks the invariants a kind must hold before it is accepted.
func (k *KindDefinition) Validate() error {
	if k.ID == "" {
		return errors.New("kind id is empty")
	}
	if k.Range < 0 {
		return fmt.Errorf("kind %s: range %v is negative", k.ID, k.Range)
	}
	if k.Level < 0 || k.Attack < 0 || k.MovePower < 0 {
		return fmt.Errorf("kind %s: level, attack and move_power must not be negative", k.ID)
	}
	return nil
}

// Catalog is the fixed kind-name -> definition mapping. It keeps the order
// the kinds were declared in, which drives single-letter key resolution.
type Catalog struct {
	kinds map[string]*KindDefinition
	order []*KindDefinition
}

// NewCatalog builds a catalog from definitions. IDs are case-insensitive.
// A missing move_power falls back to attack.
func NewCatalog(definitions []KindDefinition) (*Catalog, error) {
	c := &Catalog{kinds: make(map[string]*KindDefinition, len(definitions))}
	for _, def := range definitions {
		def.ID = strings.ToLower(strings.TrimSpace(def.ID))
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.kinds[def.ID]; dup {
			return nil, fmt.Errorf("duplicate kind %s", def.ID)
		}
		if def.MovePower == 0 {
			def.MovePower = def.Attack
		}
		if def.Name == "" {
			def.Name = def.ID
		}
		d := def
		c.kinds[d.ID] = &d
		c.order = append(c.order, &d)
	}
	return c, nil
}

// Get returns the kind with the exact id.
func (c *Catalog) Get(id string) (*KindDefinition, bool) {
	if c == nil {
		return nil, false
	}
	def, ok := c.kinds[strings.ToLower(id)]
	return def, ok
}

// Resolve maps a player-entered key to a kind: a full id, or a single letter
// matching the first kind (in catalog order) whose id starts with it.
func (c *Catalog) Resolve(key string) (*KindDefinition, bool) {
	if c == nil {
		return nil, false
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, false
	}
	if len(key) == 1 {
		for _, def := range c.order {
			if strings.HasPrefix(def.ID, key) {
				return def, true
			}
		}
		return nil, false
	}
	return c.Get(key)
}

// Kinds returns the definitions in declaration order.
func (c *Catalog) Kinds() []*KindDefinition {
	if c == nil {
		return nil
	}
	out := make([]*KindDefinition, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of kinds.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}
