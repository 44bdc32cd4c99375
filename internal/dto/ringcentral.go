package dto

// Raw record shapes relayed from the RingCentral REST API. Every nested
// field is optional; transformers must tolerate any of them being absent.

// CallParty identifies one side of a call.
type CallParty struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
}

// RecordingInfo points at a stored call recording.
type RecordingInfo struct {
	ID         string `json:"id,omitempty"`
	URI        string `json:"uri,omitempty"`
	ContentURI string `json:"contentUri,omitempty"`
}

// ExtensionRef links a record to the extension that handled it.
type ExtensionRef struct {
	ID  string `json:"id,omitempty"`
	URI string `json:"uri,omitempty"`
}

// CallLogRecord is one entry of the account call log.
type CallLogRecord struct {
	ID        string         `json:"id"`
	URI       string         `json:"uri,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	StartTime string         `json:"startTime,omitempty"`
	Duration  int            `json:"duration,omitempty"`
	Type      string         `json:"type,omitempty"`
	Direction string         `json:"direction,omitempty"`
	Action    string         `json:"action,omitempty"`
	Result    string         `json:"result,omitempty"`
	To        *CallParty     `json:"to,omitempty"`
	From      *CallParty     `json:"from,omitempty"`
	Recording *RecordingInfo `json:"recording,omitempty"`
	Extension *ExtensionRef  `json:"extension,omitempty"`
}

// Paging is the provider's page descriptor.
type Paging struct {
	Page      int `json:"page,omitempty"`
	PerPage   int `json:"perPage,omitempty"`
	PageStart int `json:"pageStart,omitempty"`
	PageEnd   int `json:"pageEnd,omitempty"`
}

// PageRef is a navigation link to another page of results.
type PageRef struct {
	URI string `json:"uri,omitempty"`
}

// Navigation carries the provider's page links.
type Navigation struct {
	FirstPage    *PageRef `json:"firstPage,omitempty"`
	NextPage     *PageRef `json:"nextPage,omitempty"`
	PreviousPage *PageRef `json:"previousPage,omitempty"`
	LastPage     *PageRef `json:"lastPage,omitempty"`
}

// ExtensionInfo is the resolved display data for one extension id.
type ExtensionInfo struct {
	Name            string `json:"name"`
	ExtensionNumber string `json:"extensionNumber"`
}

// CallLogResponse is the relayed call-log payload, with the extension
// id lookup map merged in under its own key.
type CallLogResponse struct {
	Records      []CallLogRecord          `json:"records"`
	Paging       Paging                   `json:"paging"`
	Navigation   Navigation               `json:"navigation"`
	ExtensionMap map[string]ExtensionInfo `json:"extensionMap,omitempty"`
}

// MessageParty identifies a sender or recipient of a message.
type MessageParty struct {
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
}

// MessageRecord is one entry of the extension message store.
type MessageRecord struct {
	ID            string         `json:"id"`
	URI           string         `json:"uri,omitempty"`
	Type          string         `json:"type,omitempty"`
	CreationTime  string         `json:"creationTime,omitempty"`
	ReadStatus    string         `json:"readStatus,omitempty"`
	Direction     string         `json:"direction,omitempty"`
	Subject       string         `json:"subject,omitempty"`
	MessageStatus string         `json:"messageStatus,omitempty"`
	To            []MessageParty `json:"to,omitempty"`
	From          *MessageParty  `json:"from,omitempty"`
}

// MessageResponse is the relayed message-store payload.
type MessageResponse struct {
	Records    []MessageRecord `json:"records"`
	Paging     Paging          `json:"paging"`
	Navigation Navigation      `json:"navigation"`
}

// ExtensionContact is optional contact detail on an extension.
type ExtensionContact struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email,omitempty"`
	BusinessPhone string `json:"businessPhone,omitempty"`
}

// ExtensionRecord is one provider-side phone line mapped to an employee.
type ExtensionRecord struct {
	ID              string            `json:"id"`
	URI             string            `json:"uri,omitempty"`
	ExtensionNumber string            `json:"extensionNumber,omitempty"`
	Name            string            `json:"name,omitempty"`
	Type            string            `json:"type,omitempty"`
	Status          string            `json:"status,omitempty"`
	Contact         *ExtensionContact `json:"contact,omitempty"`
}

// ExtensionResponse is the relayed extension listing.
type ExtensionResponse struct {
	Records    []ExtensionRecord `json:"records"`
	Paging     Paging            `json:"paging"`
	Navigation Navigation        `json:"navigation"`
}
