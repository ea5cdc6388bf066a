package plan

import "github.com/oro-core/netplan/internal/model"

// Edge is a directed port-to-port connection between two in-plan tasks,
// carrying the policy (buffering/queueing behavior) that governs it.
type Edge struct {
	ID       EdgeID
	From     TaskID
	FromPort string
	To       TaskID
	ToPort   string
	Policy   model.PortPolicy
}
