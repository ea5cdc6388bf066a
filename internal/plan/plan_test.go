package plan

import (
	"testing"

	"github.com/oro-core/netplan/internal/model"
	"github.com/stretchr/testify/require"
)

func camera() *model.TaskContextModel {
	return &model.TaskContextModel{Name: "usb_camera"}
}

func TestPlan_AddTaskAndEdge(t *testing.T) {
	p := New()
	a := p.AddTask(camera(), model.NewInstanceRequirements())
	b := p.AddTask(camera(), model.NewInstanceRequirements())
	e := p.AddEdge(a, "frame", b, "frame", model.PortPolicy{Kind: "buffer", BufferSize: 1})

	require.Len(t, p.Tasks(), 2)
	require.Len(t, p.Edges(), 1)
	require.Equal(t, e, p.Edges()[0].ID)
	require.Len(t, p.EdgesFrom(a), 1)
	require.Len(t, p.EdgesTo(b), 1)
}

func TestTxn_CommitAppliesStagedChanges(t *testing.T) {
	p := New()
	a := p.AddTask(camera(), model.NewInstanceRequirements())
	b := p.AddTask(camera(), model.NewInstanceRequirements())
	p.AddEdge(a, "frame", b, "frame", model.PortPolicy{})

	txn := p.Begin()
	txn.RewireEdges(b, a)
	txn.RemoveTask(b)
	require.NoError(t, txn.Commit())

	require.Len(t, p.Tasks(), 1)
	require.Nil(t, p.Task(b))
	edges := p.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, a, edges[0].From)
	require.Equal(t, a, edges[0].To)
}

func TestTxn_CommitRejectsDanglingEdge(t *testing.T) {
	p := New()
	a := p.AddTask(camera(), model.NewInstanceRequirements())
	b := p.AddTask(camera(), model.NewInstanceRequirements())
	p.AddEdge(a, "frame", b, "frame", model.PortPolicy{})

	txn := p.Begin()
	txn.RemoveTask(b)
	err := txn.Commit()
	require.Error(t, err)

	// Plan is untouched: the rejected commit didn't partially apply.
	require.Len(t, p.Tasks(), 2)
	require.Len(t, p.Edges(), 1)
}

func TestPlan_AncestorsWalksParentChain(t *testing.T) {
	p := New()
	root := p.AddTask(camera(), model.NewInstanceRequirements())
	child := p.AddTask(camera(), model.NewInstanceRequirements())
	p.Task(child).Parent = root
	p.Task(child).HasParent = true

	ancestors := p.Ancestors(child)
	require.Len(t, ancestors, 1)
	require.Equal(t, root, ancestors[0].ID)
}
