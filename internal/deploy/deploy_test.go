package deploy

import (
	"testing"

	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/model"
	"github.com/oro-core/netplan/internal/plan"
	"github.com/oro-core/netplan/internal/planerr"
	"github.com/oro-core/netplan/internal/trace"
	"github.com/stretchr/testify/require"
)

func fixtureCatalog() *catalog.Catalog {
	cat := catalog.New()

	cat.RegisterTaskContext(&model.TaskContextModel{
		Name:       "usb_camera",
		Provenance: model.NewProvenance("fixture.hcl"),
	})

	cat.RegisterDeployment(&model.DeploymentModel{
		Name:              "camera_deployment",
		Provenance:        model.NewProvenance("fixture.hcl"),
		ProcessServerName: "vision_host",
		Slots: []model.DeploySlot{
			{SlotName: "front_camera", TaskModel: "usb_camera"},
			{SlotName: "rear_camera", TaskModel: "usb_camera"},
		},
	})

	cat.RegisterDeploymentGroup(&model.DeploymentGroup{
		Name: "default",
		Bindings: []model.GroupBinding{
			{TaskModel: "usb_camera", DeploymentModel: "camera_deployment", SlotName: "front_camera"},
			{TaskModel: "usb_camera", DeploymentModel: "camera_deployment", SlotName: "rear_camera"},
		},
	})
	cat.DefaultDeploymentGroupName = "default"

	return cat
}

func TestDeploy_BindsByOrocosName(t *testing.T) {
	cat := fixtureCatalog()
	p := plan.New()

	camera := cat.TaskContexts["usb_camera"]
	reqs := model.NewInstanceRequirements()
	reqs.OrocosName = "front_camera"
	taskID := p.AddTask(camera, reqs)

	rec := trace.NewRecorder(nil)
	err := Deploy(cat, p, rec)
	require.NoError(t, err)

	require.Nil(t, p.Task(taskID))
	tasks := p.Tasks()
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Binding)
	require.Equal(t, "front_camera", tasks[0].Binding.SlotName)
	require.Equal(t, "vision_host", tasks[0].Binding.ProcessServerName)

	// Two candidate slots had to be narrowed by orocos_name, so the
	// disambiguation decision is recorded ahead of the binding itself.
	events := rec.Events()
	require.Len(t, events, 2)
	require.Equal(t, trace.Disambiguated, events[0].Kind)
	require.Equal(t, trace.DeploymentBound, events[1].Kind)
	require.Equal(t, taskID, events[1].Subject)
}

func TestDeploy_SecondIdenticalTaskGoesMissingWhenSlotsExhausted(t *testing.T) {
	cat := fixtureCatalog()
	cat.Deployments["camera_deployment"].Slots = cat.Deployments["camera_deployment"].Slots[:1]
	cat.DeploymentGroups["default"].Bindings = cat.DeploymentGroups["default"].Bindings[:1]

	p := plan.New()
	camera := cat.TaskContexts["usb_camera"]
	_ = p.AddTask(camera, model.NewInstanceRequirements())
	second := p.AddTask(camera, model.NewInstanceRequirements())

	err := Deploy(cat, p, nil)
	require.Error(t, err)
	require.True(t, planerr.OfKind(err, planerr.MissingDeployments))

	pe, ok := err.(*planerr.Error)
	require.True(t, ok)
	missing, ok := pe.Details.([]MissingDeployment)
	require.True(t, ok)
	require.Len(t, missing, 1)
	require.Equal(t, second, missing[0].TaskID)

	deployedCount := 0
	for _, task := range p.Tasks() {
		if task.HasExecutionAgent() {
			deployedCount++
		}
	}
	require.Equal(t, 1, deployedCount)
}
