package aggregates

// WriteTxOwnership says who opens and finishes the transaction around a write.
type WriteTxOwnership string

const (
	// WriteTxOwnedByAggregate means each write method runs in a transaction it opens itself,
	// so its signature never accepts a caller's transaction handle.
	WriteTxOwnedByAggregate WriteTxOwnership = "aggregate_owned"
)

// Contract names an aggregate and its transaction policy.
type Contract struct {
	Name             string
	WriteTxOwnership WriteTxOwnership
}

type Aggregate interface {
	Contract() Contract
}

func (c Contract) RequiresAggregateOwnedTx() bool {
	return c.WriteTxOwnership == WriteTxOwnedByAggregate
}
