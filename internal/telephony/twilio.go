package telephony

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/twilio/twilio-go/twiml"
)

// Service answers the Twilio voice webhook and performs mid-call control
// through the REST API.
type Service struct {
	accountSID string
	authToken  string
	publicHost string
	transferTo string
	client     *twilio.RestClient
}

// NewService constructs the Twilio service. publicHost is the externally
// reachable hostname Twilio connects back to for the media stream;
// transferTo is the number a call is handed to when the assistant gives up.
func NewService(accountSID, authToken, publicHost, transferTo string) *Service {
	var client *twilio.RestClient
	if accountSID != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	} else {
		log.Printf("WARNING: Twilio credentials missing, call control disabled")
	}

	return &Service{
		accountSID: accountSID,
		authToken:  authToken,
		publicHost: publicHost,
		transferTo: transferTo,
		client:     client,
	}
}

// Enabled reports whether the REST client is usable.
func (s *Service) Enabled() bool { return s.client != nil }

// AuthToken exposes the webhook signing secret for the signature middleware.
func (s *Service) AuthToken() string { return s.authToken }

// HandleVoice answers the inbound-call webhook with TwiML that greets the
// caller and connects the call audio to our media stream endpoint.
func (s *Service) HandleVoice(c echo.Context) error {
	params, _ := c.Get("twilioParams").(map[string]string)

	callSID := params["CallSid"]
	from := params["From"]
	log.Printf("Incoming call from %s, CallSID: %s", from, callSID)

	host := s.publicHost
	if host == "" {
		host = c.Request().Host
	}
	streamURL := fmt.Sprintf("wss://%s/ws/media/%s", host, callSID)

	say := &twiml.VoiceSay{Message: "Welkom bij L'Osteria. Een ogenblik geduld."}
	connect := &twiml.VoiceConnect{
		InnerElements: []twiml.Element{
			&twiml.VoiceStream{Url: streamURL},
		},
	}
	response, err := twiml.Voice([]twiml.Element{say, connect})
	if err != nil {
		log.Printf("Failed to build TwiML for call %s: %v", callSID, err)
		return c.String(http.StatusInternalServerError, "Failed to generate TwiML")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/xml")
	return c.String(http.StatusOK, response)
}

// Transfer redirects an in-progress call to the human line by updating it
// with Dial TwiML.
func (s *Service) Transfer(callSID string) error {
	if s.client == nil {
		return fmt.Errorf("twilio: call control disabled, cannot transfer %s", callSID)
	}
	if s.transferTo == "" {
		return fmt.Errorf("twilio: no transfer number configured")
	}

	params := &twilioApi.UpdateCallParams{}
	params.SetTwiml(fmt.Sprintf("<Response><Dial>%s</Dial></Response>", s.transferTo))

	if _, err := s.client.Api.UpdateCall(callSID, params); err != nil {
		return fmt.Errorf("twilio: update call %s: %w", callSID, err)
	}
	log.Printf("Call %s transferred to %s", callSID, s.transferTo)
	return nil
}
