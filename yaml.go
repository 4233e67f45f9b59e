package watchable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML returns a yaml node preserving entries enumeration order
func (c *Container) MarshalYAML() (interface{}, error) {
	if err := c.check("MarshalYAML", nil); err != nil {
		return nil, err
	}
	return c.yamlNode()
}

func (c *Container) yamlNode() (*yaml.Node, error) {
	if c.store.IsList() {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		var err error
		c.store.Range(func(_, value interface{}) bool {
			var item *yaml.Node
			if item, err = c.yamlValueNode(value); err == nil {
				node.Content = append(node.Content, item)
			}
			return err == nil
		})
		return node, err
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	var err error
	c.store.Range(func(key, value interface{}) bool {
		keyNode := &yaml.Node{}
		if err = keyNode.Encode(key); err != nil {
			return false
		}
		var valueNode *yaml.Node
		if valueNode, err = c.yamlValueNode(value); err != nil {
			return false
		}
		node.Content = append(node.Content, keyNode, valueNode)
		return true
	})
	return node, err
}

func (c *Container) yamlValueNode(value interface{}) (*yaml.Node, error) {
	if child, ok := value.(*Container); ok {
		return child.yamlNode()
	}
	node := &yaml.Node{}
	if err := node.Encode(c.serializeValue(value)); err != nil {
		return nil, err
	}
	return node, nil
}

// FromYAML creates a container from a YAML document, mapping keys keep document order
func FromYAML(data []byte, opts ...Option) (*Container, error) {
	o := newOptions(opts)
	if parent := o.parent; parent != nil && parent.destroyed {
		return nil, newError("FromYAML", KindUsage, nil, fmt.Errorf("parent was destroyed"))
	}
	doc := &yaml.Node{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, newError("FromYAML", KindUsage, nil, err)
	}
	ret := newNode(o.parent, o)
	if node := documentContent(doc); node != nil {
		if err := ret.seedYAML(node); err != nil {
			_ = ret.Destroy()
			return nil, err
		}
	}
	ret.baseline = ret.Serialize()
	return ret, nil
}

func documentContent(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode {
		if doc.Kind == 0 {
			return nil
		}
		return doc
	}
	if len(doc.Content) == 0 {
		return nil
	}
	return doc.Content[0]
}

func (c *Container) seedYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.SequenceNode:
		for i, item := range node.Content {
			if err := c.setYAML(i, item); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key interface{}
			if err := node.Content[i].Decode(&key); err != nil {
				return newError("FromYAML", KindUsage, nil, err)
			}
			if err := c.setYAML(key, node.Content[i+1]); err != nil {
				return err
			}
		}
	default:
		return newError("FromYAML", KindUsage, nil, fmt.Errorf("expected sequence or mapping at line %v", node.Line))
	}
	return nil
}

func (c *Container) setYAML(key interface{}, node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	var value interface{}
	switch node.Kind {
	case yaml.SequenceNode, yaml.MappingNode:
		child := newNode(c, c.options)
		if err := child.seedYAML(node); err != nil {
			return err
		}
		child.baseline = child.Serialize()
		value = child
	default:
		if err := node.Decode(&value); err != nil {
			return newError("FromYAML", KindUsage, key, err)
		}
	}
	if value == nil {
		return nil
	}
	if err := c.store.Set(key, value); err != nil {
		return wrapTableError("FromYAML", key, err)
	}
	return nil
}

var _ yaml.Marshaler = (*Container)(nil)
