package acceptance

import (
	"encoding/json"
	"net/http"
)

func (s *Suite) TestChannelProfile_Anonymous() {
	s.registerUser("channel1", "channel1@example.com")

	resp, err := http.Get(s.BaseURL + "/api/v1/channels/channel1")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var envelope profileEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Equal("channel1", envelope.Data.Username)
	s.Zero(envelope.Data.SubscriberCount)
	s.Zero(envelope.Data.ChannelsSubscribedToCount)
	s.False(envelope.Data.IsSubscribed)
}

func (s *Suite) TestChannelProfile_CaseInsensitiveUsername() {
	s.registerUser("mixedcase", "mixedcase@example.com")

	resp, err := http.Get(s.BaseURL + "/api/v1/channels/MixedCase")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestChannelProfile_NotFound() {
	resp, err := http.Get(s.BaseURL + "/api/v1/channels/ghost")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *Suite) TestSubscribe_CountsAndViewerFlag() {
	s.registerUser("creator", "creator@example.com")
	s.registerUser("viewer", "viewer@example.com")
	viewer, _ := s.loginUser("viewer")

	sub := s.authorizedRequest("POST", "/api/v1/channels/creator/subscribe", viewer.Data.AccessToken, nil)
	defer sub.Body.Close()
	s.Require().Equal(http.StatusCreated, sub.StatusCode)

	// As the subscriber.
	resp := s.authorizedRequest("GET", "/api/v1/channels/creator", viewer.Data.AccessToken, nil)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var envelope profileEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Equal(int64(1), envelope.Data.SubscriberCount)
	s.True(envelope.Data.IsSubscribed)

	// Anonymous viewers never see isSubscribed set.
	anonResp, err := http.Get(s.BaseURL + "/api/v1/channels/creator")
	s.Require().NoError(err)
	defer anonResp.Body.Close()

	var anonEnvelope profileEnvelope
	s.Require().NoError(json.NewDecoder(anonResp.Body).Decode(&anonEnvelope))
	s.Equal(int64(1), anonEnvelope.Data.SubscriberCount)
	s.False(anonEnvelope.Data.IsSubscribed)

	// The subscriber's own channel reflects the outgoing edge.
	ownResp, err := http.Get(s.BaseURL + "/api/v1/channels/viewer")
	s.Require().NoError(err)
	defer ownResp.Body.Close()

	var ownEnvelope profileEnvelope
	s.Require().NoError(json.NewDecoder(ownResp.Body).Decode(&ownEnvelope))
	s.Equal(int64(1), ownEnvelope.Data.ChannelsSubscribedToCount)
}

func (s *Suite) TestSubscribe_RequiresAuth() {
	s.registerUser("lonely", "lonely@example.com")

	resp, err := http.Post(s.BaseURL+"/api/v1/channels/lonely/subscribe", "application/json", nil)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestSubscribe_SelfIsRejected() {
	s.registerUser("narciss", "narciss@example.com")
	self, _ := s.loginUser("narciss")

	resp := s.authorizedRequest("POST", "/api/v1/channels/narciss/subscribe", self.Data.AccessToken, nil)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestUnsubscribe_Flow() {
	s.registerUser("streamer", "streamer@example.com")
	s.registerUser("fan", "fan@example.com")
	fan, _ := s.loginUser("fan")

	sub := s.authorizedRequest("POST", "/api/v1/channels/streamer/subscribe", fan.Data.AccessToken, nil)
	defer sub.Body.Close()
	s.Require().Equal(http.StatusCreated, sub.StatusCode)

	unsub := s.authorizedRequest("DELETE", "/api/v1/channels/streamer/subscribe", fan.Data.AccessToken, nil)
	defer unsub.Body.Close()
	s.Equal(http.StatusOK, unsub.StatusCode)

	resp := s.authorizedRequest("GET", "/api/v1/channels/streamer", fan.Data.AccessToken, nil)
	defer resp.Body.Close()

	var envelope profileEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Zero(envelope.Data.SubscriberCount)
	s.False(envelope.Data.IsSubscribed)
}
