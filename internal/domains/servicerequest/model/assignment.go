package model

import "time"

const (
	AssignmentTableName  = "service_technicians"
	AssignmentEntityName = "service_technician"

	FieldServiceRequestID = "service_request_id"
	FieldTechnicianID     = "technician_id"
)

// Assignment links a technician to a service request.
type Assignment struct {
	ServiceRequestID int64     `db:"service_request_id"`
	TechnicianID     int64     `db:"technician_id"`
	AssignedAt       time.Time `db:"assigned_at"`
}

func NewAssignments(serviceRequestID int64, technicianIDs []int64, assignedAt time.Time) []Assignment {
	assignments := make([]Assignment, len(technicianIDs))

	for i, technicianID := range technicianIDs {
		assignments[i] = Assignment{
			ServiceRequestID: serviceRequestID,
			TechnicianID:     technicianID,
			AssignedAt:       assignedAt,
		}
	}

	return assignments
}
