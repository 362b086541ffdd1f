package ui

import "github.com/iw2rmb/blueprints/internal/document"

type result[T any] struct {
	val T
	err error
}

// Requests from the host. Each carries a reply channel with room for one
// value so the UI never blocks answering.
type (
	confirmRequest struct {
		id      uint64
		title   string
		message string
		reply   chan result[bool]
	}
	openPathRequest struct {
		id    uint64
		exts  []string
		reply chan result[string]
	}
	savePathRequest struct {
		id          uint64
		defaultPath string
		reply       chan result[string]
	}
	urlRequest struct {
		id         uint64
		defaultURL string
		reply      chan result[string]
	}
	textRequest struct {
		reply chan result[string]
	}

	// dismissMsg closes the modal opened by request id after the host
	// stopped waiting for it.
	dismissMsg struct{ id uint64 }
)

// Notifications from the host.
type (
	loadMsg        struct {
		generation uint64
		content    string
	}
	affordancesMsg document.Affordances
	noticeMsg      document.Notice
	quitMsg        struct{}
)
