package views

import "time"

// messageTTL is how long a success message stays under the shelf
const messageTTL = 4 * time.Second

// ViewState holds the size and status line every view carries.
// Success messages expire; errors stay until replaced or cleared.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
	messageAt  time.Time
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
	s.messageAt = time.Now()
}

// SetError shows err on the status line, a nil err clears it
func (s *ViewState) SetError(err error) {
	if err == nil {
		s.ClearMessage()
		return
	}
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
	s.messageAt = time.Time{}
}

// ExpireMessage clears a success message older than ttl at now.
// It reports whether the status line changed.
func (s *ViewState) ExpireMessage(now time.Time, ttl time.Duration) bool {
	if s.Message == "" || s.MessageErr || now.Sub(s.messageAt) < ttl {
		return false
	}
	s.ClearMessage()
	return true
}
