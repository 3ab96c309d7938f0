package ir

// Document holds the root node of a TON text.
type Document struct {
	Root *Node
}

func NewDocument(root *Node) *Document {
	d := &Document{}
	d.SetRoot(root)
	return d
}

// SetRoot replaces the root. A root taken from another tree is copied.
func (d *Document) SetRoot(root *Node) {
	if root == nil {
		root = Null()
	}
	if root.Parent != nil {
		root = root.Clone()
	}
	d.Root = root
}

func (d *Document) IsObject() bool {
	return d.Root != nil && d.Root.Type == ObjectType
}

func (d *Document) IsArray() bool {
	return d.Root != nil && d.Root.Type == ArrayType
}

func (d *Document) IsValue() bool {
	return d.Root != nil && d.Root.Type.IsLeaf()
}

func (d *Document) AsObject() *Node {
	if !d.IsObject() {
		return nil
	}
	return d.Root
}

func (d *Document) AsArray() *Node {
	if !d.IsArray() {
		return nil
	}
	return d.Root
}

func (d *Document) AsValue() *Node {
	if !d.IsValue() {
		return nil
	}
	return d.Root
}

func (d *Document) Clone() *Document {
	if d.Root == nil {
		return &Document{}
	}
	return &Document{Root: d.Root.Clone()}
}

// ToAny returns the JSON projection of the document, see ToAny.
func (d *Document) ToAny() any {
	if d.Root == nil {
		return nil
	}
	return ToAny(d.Root)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	if d.Root == nil {
		return []byte("null"), nil
	}
	return d.Root.MarshalJSON()
}
