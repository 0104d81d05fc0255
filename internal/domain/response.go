package domain

// Envelope is the response wrapper shared by every remote endpoint.
// Error is a plain message; Success=false with a 2xx status is an
// application-level failure.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// OK builds a successful envelope.
func OK[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: data}
}

// Pageable echoes the page actually served.
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// FlightPage is one page of the admin flight listing.
type FlightPage struct {
	Content       []AdminFlight `json:"content"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	Pageable      Pageable      `json:"pageable"`
}

// DeleteResult is the payload of DELETE /flights/admin/{id}.
type DeleteResult struct {
	ID int64 `json:"id"`
}
