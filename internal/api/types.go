package api

// StatusSnapshot is the server's view of the connection. Optional fields are
// pointers because the backend sends null while disconnected.
type StatusSnapshot struct {
	Connected bool    `json:"connected"`
	Server    *string `json:"server"`
	PublicIP  *string `json:"public_ip"`
	Method    *string `json:"method"`
	Upload    string  `json:"upload"`
	Download  string  `json:"download"`
	StartTime *string `json:"start_time"`
}

// ServerDescriptor is one selectable entry from the server list.
type ServerDescriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Ping     string `json:"ping,omitempty"`
}

// ServerList is the envelope returned by /api/servers.
type ServerList struct {
	Servers []ServerDescriptor `json:"servers"`
}

// ConnectRequest is the body posted to /api/vpn/connect.
type ConnectRequest struct {
	Server string `json:"server"`
}

// ActionResult is returned by connect and disconnect.
type ActionResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Status  *StatusSnapshot `json:"status,omitempty"`
}

// ConfigDocument is the client configuration returned by /api/vpn/config.
type ConfigDocument struct {
	Config    string  `json:"config"`
	QRCodeURL *string `json:"qr_code_url,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// StringOr returns *s, or fallback when s is nil or empty.
func StringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
