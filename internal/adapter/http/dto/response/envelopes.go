package response

import "gmcl_backoffice/internal/domain/entities"

// Success envelopes mirror the shapes the dashboard front-end consumes:
// a success flag, an optional human message, and the record(s).

type EstimationResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Estimation entities.Estimation `json:"estimation"`
}

func FromEstimation(e entities.Estimation, message string) EstimationResponse {
	return EstimationResponse{Success: true, Message: message, Estimation: e}
}

type EstimationListResponse struct {
	Success     bool                  `json:"success"`
	Estimations []entities.Estimation `json:"estimations"`
}

func FromEstimations(list []entities.Estimation) EstimationListResponse {
	if list == nil {
		list = []entities.Estimation{}
	}
	return EstimationListResponse{Success: true, Estimations: list}
}

type RendezVousResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    entities.RendezVous `json:"data"`
}

func FromRendezVous(rdv entities.RendezVous, message string) RendezVousResponse {
	return RendezVousResponse{Success: true, Message: message, Data: rdv}
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
