package transport

import (
	"net/http"
	"strconv"

	"topildim/internal/repository"
)

// listResponse wraps one page of listing records
type listResponse struct {
	Success    bool                   `json:"success"`
	Data       interface{}            `json:"data"`
	Pagination *repository.Pagination `json:"pagination"`
}

// dataResponse wraps a single record
type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// messageResponse confirms an operation without returning a record
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// parseListQuery reads the shared listing query parameters. statusParam is
// the boolean status filter name (isClaimed or isFound); it compares
// against the literal string "true", so any other supplied value filters
// for false. Unparsable page/limit values come out as 0 and clamp to the
// defaults downstream.
func parseListQuery(r *http.Request, statusParam string, withCategory bool) repository.ListQuery {
	qs := r.URL.Query()

	q := repository.ListQuery{
		Country: qs.Get("country"),
		Region:  qs.Get("viloyat"),
		Page:    atoiOrZero(qs.Get("page")),
		Limit:   atoiOrZero(qs.Get("limit")),
	}

	if qs.Has(statusParam) {
		status := qs.Get(statusParam) == "true"
		q.Status = &status
	}
	if withCategory {
		q.Category = qs.Get("category")
	}

	return q
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
