package nms

import (
	"testing"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/trace"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func fixtureCatalog() *catalog.Catalog {
	cat := catalog.New()
	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "sensor",
		Provenance: model.NewProvenance("fixture.hcl"),
	})
	return cat
}

func TestRank_FullyInstantiatedBeatsPartial(t *testing.T) {
	sensor := &model.TaskContextModel{
		Name:       "sensor",
		Provenance: model.NewProvenance("fixture.hcl"),
		Arguments:  []model.ArgumentDef{{Name: "rate", Type: cty.Number}},
	}

	partial := &plan.Task{Model: sensor, Requirements: model.NewInstanceRequirements()}

	complete := &plan.Task{
		Model: sensor,
		Requirements: model.InstanceRequirements{
			Arguments: map[string]cty.Value{"rate": cty.NumberIntVal(30)},
		},
	}

	require.Equal(t, leftWins, rank(complete, partial))
	require.Equal(t, rightWins, rank(partial, complete))
}

func TestRank_TransactionProxyWinsTie(t *testing.T) {
	sensor := &model.TaskContextModel{Name: "sensor", Provenance: model.NewProvenance("fixture.hcl")}
	proxy := &plan.Task{Model: sensor, Requirements: model.NewInstanceRequirements(), IsTransactionProxy: true}
	fresh := &plan.Task{Model: sensor, Requirements: model.NewInstanceRequirements()}

	require.Equal(t, leftWins, rank(proxy, fresh))
}

func TestMergeIdenticalTasks_MergesDuplicateAbstractTasks(t *testing.T) {
	cat := fixtureCatalog()
	sensor := cat.TaskContexts["sensor"]
	p := plan.New()

	a := p.AddTask(sensor, model.NewInstanceRequirements())
	b := p.AddTask(sensor, model.NewInstanceRequirements())

	rec := trace.NewRecorder(nil)
	err := MergeIdenticalTasks(cat, p, rec)
	require.NoError(t, err)
	require.Len(t, p.Tasks(), 1)

	// spec.md §8 scenario 4 is a genuine rank tie between two identical
	// pending tasks; §5 requires the tie-break to be deterministic (stable
	// by TaskID), so the lower-ID task — a, added first — must always be
	// the one that survives and absorbs b.
	events := rec.Events()
	require.Len(t, events, 1)
	require.Equal(t, trace.MergeAccepted, events[0].Kind)
	require.Equal(t, b, events[0].Subject)
	require.Equal(t, a, events[0].Related)

	survivor := p.Tasks()[0]
	require.Equal(t, a, survivor.ID)
	require.Nil(t, p.Task(b))
}

func TestMergeIdenticalTasks_DisambiguatesByOrocosName(t *testing.T) {
	cat := fixtureCatalog()
	sensor := cat.TaskContexts["sensor"]
	p := plan.New()

	reqsA := model.NewInstanceRequirements()
	reqsA.Arguments["mode"] = cty.StringVal("x")
	aID := p.AddTask(sensor, reqsA)
	a := p.Task(aID)
	a.IsTransactionProxy = true
	a.OrocosName = "front"

	reqsB := model.NewInstanceRequirements()
	reqsB.Arguments["mode"] = cty.StringVal("y")
	bID := p.AddTask(sensor, reqsB)
	b := p.Task(bID)
	b.IsTransactionProxy = true
	b.OrocosName = "other"

	cID := p.AddTask(sensor, model.NewInstanceRequirements())
	c := p.Task(cID)
	c.OrocosName = "front"

	err := MergeIdenticalTasks(cat, p, nil)
	require.NoError(t, err)

	tasks := p.Tasks()
	require.Len(t, tasks, 2)

	var survivedA, survivedB bool
	for _, task := range tasks {
		switch task.ID {
		case aID:
			survivedA = true
			require.Equal(t, "x", task.Requirements.Arguments["mode"].AsString())
		case bID:
			survivedB = true
		}
	}
	require.True(t, survivedA, "front-named proxy should have absorbed the ambiguous target")
	require.True(t, survivedB, "unrelated transaction proxy should be untouched")
	require.Nil(t, p.Task(cID), "absorbed target should no longer be in the plan")
}

func TestBreakSimpleCycles_RemovesOneEdgeFromEachComponent(t *testing.T) {
	g := newMergeGraph()
	g.addEdge(1, 2)
	g.addEdge(2, 1)
	g.addEdge(3, 4)
	g.addEdge(4, 3)

	broke := breakSimpleCycles(g)
	require.True(t, broke)

	require.Less(t, len(g.Children(1))+len(g.Children(2)), 2)
	require.Less(t, len(g.Children(3))+len(g.Children(4)), 2)
}
