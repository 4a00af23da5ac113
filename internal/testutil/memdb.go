package testutil

import (
	"fmt"

	"github.com/joshuapare/sdbkit/pkg/types"
)

// MemDB is an in-memory types.Database over Node trees. Tag ids are
// assigned in pre-order starting at 1, so the converter can be tested
// without any binary encoding, including with codes the file reader would
// reject.
type MemDB struct {
	Head   types.Header
	nodes  []*Node
	kids   map[types.TagID][]types.TagID
	closed bool
	// Reads counts typed accessor calls.
	Reads int
}

// NewMemDB builds a fake database with the given top-level nodes.
func NewMemDB(top ...Node) *MemDB {
	m := &MemDB{
		Head:  types.Header{MajorVersion: 3},
		nodes: []*Node{nil},
		kids:  map[types.TagID][]types.TagID{},
	}
	for i := range top {
		m.kids[types.TagIDRoot] = append(m.kids[types.TagIDRoot], m.add(&top[i]))
	}
	return m
}

func (m *MemDB) add(n *Node) types.TagID {
	id := types.TagID(len(m.nodes))
	m.nodes = append(m.nodes, n)
	for i := range n.Children {
		m.kids[id] = append(m.kids[id], m.add(&n.Children[i]))
	}
	return id
}

// Closed reports whether Close was called.
func (m *MemDB) Closed() bool { return m.closed }

func (m *MemDB) Close() error {
	m.closed = true
	return nil
}

func (m *MemDB) Header() types.Header { return m.Head }

func (m *MemDB) Root() (types.TagID, error) {
	return types.TagIDRoot, nil
}

func (m *MemDB) Tag(id types.TagID) (types.Tag, error) {
	n, err := m.node(id)
	if err != nil {
		return 0, err
	}
	return n.Code, nil
}

func (m *MemDB) Children(id types.TagID) ([]types.TagID, error) {
	if id != types.TagIDRoot {
		n, err := m.node(id)
		if err != nil {
			return nil, err
		}
		if n.Code.Type() != types.TagTypeList {
			return nil, mismatch(n, "LIST")
		}
	}
	return m.kids[id], nil
}

func (m *MemDB) ReadByte(id types.TagID) (uint8, error) {
	n, err := m.typed(id, types.TagTypeByte, "BYTE")
	return uint8(n.Num), err
}

func (m *MemDB) ReadWord(id types.TagID) (uint16, error) {
	n, err := m.typed(id, types.TagTypeWord, "WORD")
	return uint16(n.Num), err
}

func (m *MemDB) ReadDWord(id types.TagID) (uint32, error) {
	n, err := m.typed(id, types.TagTypeDWord, "DWORD")
	return uint32(n.Num), err
}

func (m *MemDB) ReadQWord(id types.TagID) (uint64, error) {
	n, err := m.typed(id, types.TagTypeQWord, "QWORD")
	return n.Num, err
}

func (m *MemDB) ReadBinary(id types.TagID) ([]byte, error) {
	n, err := m.typed(id, types.TagTypeBinary, "BINARY")
	return n.Data, err
}

func (m *MemDB) ReadString(id types.TagID) (string, error) {
	m.Reads++
	n, err := m.node(id)
	if err != nil {
		return "", err
	}
	switch n.Code.Type() {
	case types.TagTypeString, types.TagTypeStringRef:
		return n.Str, nil
	default:
		return "", mismatch(n, "STRING or STRINGREF")
	}
}

func (m *MemDB) typed(id types.TagID, want types.TagType, label string) (Node, error) {
	m.Reads++
	n, err := m.node(id)
	if err != nil {
		return Node{}, err
	}
	if n.Code.Type() != want {
		return Node{}, mismatch(n, label)
	}
	return *n, nil
}

func (m *MemDB) node(id types.TagID) (*Node, error) {
	if m.closed {
		return nil, types.ErrClosed
	}
	if id == types.TagIDRoot || int(id) >= len(m.nodes) {
		return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: fmt.Sprintf("no tag %d", id)}
	}
	return m.nodes[id], nil
}

func mismatch(n *Node, label string) error {
	return &types.Error{Kind: types.ErrKindType, Msg: fmt.Sprintf("tag 0x%04X is not a %s type", uint16(n.Code), label)}
}

var _ types.Database = (*MemDB)(nil)
