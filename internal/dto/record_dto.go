package dto

import "time"

type RecordResponse struct {
	Id        string                 `json:"id"`
	Domain    string                 `json:"domain"`
	Status    string                 `json:"status"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"createdAt"`
}

type CreateRecordResponse struct {
	Success bool            `json:"success"`
	Record  *RecordResponse `json:"record"`
}

type ShowRecordResponse struct {
	Success bool            `json:"success"`
	Record  *RecordResponse `json:"record"`
}

type ListRecordResponse struct {
	Domain  string            `json:"domain"`
	Records []*RecordResponse `json:"records"`
	Total   int               `json:"total"`
}

type VerifyFinanceRequest struct {
	RecordId string `json:"recordId" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

type VerifyFinanceResponse struct {
	Success  bool   `json:"success"`
	RecordId string `json:"recordId"`
	Verified bool   `json:"verified"`
}
