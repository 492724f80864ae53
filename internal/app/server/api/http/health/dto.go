package health

type StatusOutput struct {
	Body StatusBody
}

type StatusBody struct {
	Status string `json:"status" example:"ok" doc:"Service health status"`
}
