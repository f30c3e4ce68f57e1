package zone

// Action tells whether an operation adds or deletes a record.
type Action string

// Diff actions. The update protocol has no modify primitive, so a TTL
// change comes out as a delete followed by an add.
const (
	ActionDelete Action = "delete"
	ActionAdd    Action = "add"
)

// Op is one update operation produced by Diff. Name is fully qualified.
// TTL is only meaningful for adds; deletes identify the record by name,
// class, type and rdata alone.
type Op struct {
	Action Action
	Name   string
	TTL    uint32
	Class  string
	Type   string
	Rdata  string
}

// Diff compares two snapshots and returns the operations needed to turn
// the before state into the after state, in the same natural order the
// renderer uses. A tuple present in both snapshots with the same TTL
// produces nothing; a changed TTL produces a delete and an add carrying
// the after TTL. An empty result means there is nothing to submit.
func (s *Store) Diff(zoneName string, before, after Snapshot) []Op {
	var ops []Op

	for _, t := range s.index {
		p := s.presence[t]

		ttlBefore, inBefore := p[before]
		ttlAfter, inAfter := p[after]

		if inBefore && inAfter && ttlBefore == ttlAfter {
			continue
		}

		if inBefore {
			ops = append(ops, Op{
				Action: ActionDelete,
				Name:   Qualify(t.name, zoneName),
				Class:  t.class,
				Type:   t.rtype,
				Rdata:  t.rdata,
			})
		}

		if inAfter {
			ops = append(ops, Op{
				Action: ActionAdd,
				Name:   Qualify(t.name, zoneName),
				TTL:    ttlAfter,
				Class:  t.class,
				Type:   t.rtype,
				Rdata:  t.rdata,
			})
		}
	}

	return ops
}
