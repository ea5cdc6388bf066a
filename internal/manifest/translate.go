package manifest

import (
	"context"
	"fmt"

	"github.com/oro-core/netplan/internal/model"
)

func parseDirection(s string) (model.Direction, error) {
	switch s {
	case "in":
		return model.In, nil
	case "out":
		return model.Out, nil
	default:
		return model.In, fmt.Errorf("invalid port direction %q: must be \"in\" or \"out\"", s)
	}
}

func translatePorts(ctx context.Context, schemas []*PortSchema) ([]model.Port, error) {
	ports := make([]model.Port, 0, len(schemas))
	for _, s := range schemas {
		dir, err := parseDirection(s.Direction)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", s.Name, err)
		}
		ctyType, err := typeExprToCtyType(ctx, s.Type)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", s.Name, err)
		}
		ports = append(ports, model.Port{Name: s.Name, Direction: dir, Type: ctyType})
	}
	return ports, nil
}

func translateFulfills(schemas []*FulfillsSchema) []model.FulfillsEdge {
	edges := make([]model.FulfillsEdge, 0, len(schemas))
	for _, s := range schemas {
		edges = append(edges, model.FulfillsEdge{Target: s.Target, Mapping: model.PortMapping(s.Mapping)})
	}
	return edges
}

func translateArguments(ctx context.Context, schemas []*ArgumentSchema) ([]model.ArgumentDef, error) {
	args := make([]model.ArgumentDef, 0, len(schemas))
	for _, s := range schemas {
		ctyType, err := typeExprToCtyType(ctx, s.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s.Name, err)
		}
		args = append(args, model.ArgumentDef{
			Name:     s.Name,
			Type:     ctyType,
			Default:  s.Default,
			Optional: s.Optional,
		})
	}
	return args, nil
}

func translateTaskContext(ctx context.Context, filePath string, s *TaskContextSchema) (*model.TaskContextModel, error) {
	ports, err := translatePorts(ctx, s.Ports)
	if err != nil {
		return nil, fmt.Errorf("task_context %q: %w", s.Name, err)
	}
	args, err := translateArguments(ctx, s.Arguments)
	if err != nil {
		return nil, fmt.Errorf("task_context %q: %w", s.Name, err)
	}
	return &model.TaskContextModel{
		Name:       s.Name,
		Provenance: model.NewProvenance(filePath),
		Ports:      ports,
		Arguments:  args,
		Fulfills:   translateFulfills(s.Fulfills),
	}, nil
}

func translateDataService(ctx context.Context, filePath string, s *DataServiceSchema) (*model.DataServiceModel, error) {
	ports, err := translatePorts(ctx, s.Ports)
	if err != nil {
		return nil, fmt.Errorf("data_service %q: %w", s.Name, err)
	}
	return &model.DataServiceModel{
		Name:       s.Name,
		Provenance: model.NewProvenance(filePath),
		Ports:      ports,
		Fulfills:   translateFulfills(s.Fulfills),
	}, nil
}

func translateComposition(filePath string, s *CompositionSchema) (*model.CompositionModel, error) {
	children := make([]model.CompositionChild, 0, len(s.Children))
	for _, c := range s.Children {
		children = append(children, model.CompositionChild{
			Name:           c.Name,
			RequiredModels: c.RequiredModels,
			Options:        model.DependencyOptions{Optional: c.Optional},
		})
	}

	connections := make([]model.Connection, 0, len(s.Connections))
	for _, c := range s.Connections {
		conn := model.Connection{
			FromChild: c.FromChild,
			FromPort:  c.FromPort,
			ToChild:   c.ToChild,
			ToPort:    c.ToPort,
		}
		if c.Policy != nil {
			conn.Policy = model.PortPolicy{Kind: c.Policy.Kind, BufferSize: c.Policy.BufferSize}
		}
		connections = append(connections, conn)
	}

	exports := make([]model.ExportedPort, 0, len(s.Exports))
	for _, e := range s.Exports {
		dir, err := parseDirection(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("composition %q: export %q: %w", s.Name, e.Name, err)
		}
		exports = append(exports, model.ExportedPort{
			Name:      e.Name,
			Direction: dir,
			ChildName: e.ChildName,
			ChildPort: e.ChildPort,
		})
	}

	specializations := make([]model.Specialization, 0, len(s.Specializations))
	for _, sp := range s.Specializations {
		specializations = append(specializations, model.Specialization{
			Selections:  sp.Selections,
			Specialized: sp.Specialized,
		})
	}

	return &model.CompositionModel{
		Name:            s.Name,
		Provenance:      model.NewProvenance(filePath),
		Children:        children,
		Connections:     connections,
		Exports:         exports,
		Specializations: specializations,
		Fulfills:        translateFulfills(s.Fulfills),
	}, nil
}

func translateDeployment(filePath string, s *DeploymentSchema) *model.DeploymentModel {
	slots := make([]model.DeploySlot, 0, len(s.Slots))
	for _, sl := range s.Slots {
		slots = append(slots, model.DeploySlot{SlotName: sl.Name, TaskModel: sl.TaskModel})
	}
	return &model.DeploymentModel{
		Name:              s.Name,
		Provenance:        model.NewProvenance(filePath),
		ProcessServerName: s.ProcessServerName,
		Slots:             slots,
	}
}

func translateDeploymentGroup(s *DeploymentGroupSchema) *model.DeploymentGroup {
	bindings := make([]model.GroupBinding, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		bindings = append(bindings, model.GroupBinding{
			TaskModel:       b.TaskModel,
			DeploymentModel: b.DeploymentModel,
			SlotName:        b.SlotName,
		})
	}
	return &model.DeploymentGroup{Name: s.Name, Bindings: bindings}
}
