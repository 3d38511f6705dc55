package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07.03.2024", FormatDate(&d))
	assert.Equal(t, "", FormatDate(nil))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, time.December, 31, 9, 5, 59, 0, time.UTC)
	assert.Equal(t, "31.12.2024 09:05", FormatDateTime(&ts))
	assert.Equal(t, "", FormatDateTime(nil))
}

func TestDogRequestDefaultsTitles(t *testing.T) {
	dog := DogRequest{}.ToDog()
	require.NotNil(t, dog.Titles)
	assert.Empty(t, dog.Titles)

	raw, err := json.Marshal(dog)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"titles":[]`)
	assert.Contains(t, string(raw), `"name":null`)
}

func TestUpdateDogRequestDecodesEmbeddedFields(t *testing.T) {
	var req UpdateDogRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":4,"name":"Rex","titles":["CH"]}`), &req))

	assert.Equal(t, 4, req.ID)
	require.NotNil(t, req.Name)
	assert.Equal(t, "Rex", *req.Name)
	assert.Equal(t, []string{"CH"}, req.Titles)
}

func TestLitterRequestToLitter(t *testing.T) {
	born := "2023-11-02"
	l, err := LitterRequest{BornDate: &born}.ToLitter()
	require.NoError(t, err)
	require.NotNil(t, l.BornDate)
	assert.Equal(t, "02.11.2023", l.View().BornDate)

	empty := ""
	l, err = LitterRequest{BornDate: &empty}.ToLitter()
	require.NoError(t, err)
	assert.Nil(t, l.BornDate)
	assert.Equal(t, "", l.View().BornDate)

	bad := "02.11.2023"
	_, err = LitterRequest{BornDate: &bad}.ToLitter()
	assert.Error(t, err)
}

func TestMessageView(t *testing.T) {
	ts := time.Date(2025, time.January, 2, 18, 30, 0, 0, time.UTC)
	status := "new"
	v := Message{ID: 3, Status: &status, CreatedAt: &ts}.View()

	assert.Equal(t, "02.01.2025 18:30", v.CreatedAt)
	assert.Equal(t, "new", *v.Status)
	assert.Equal(t, "", Message{}.View().CreatedAt)
}

func TestAuthRequestResolvedAction(t *testing.T) {
	var req AuthRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Equal(t, AuthActionLogin, req.ResolvedAction())

	require.NoError(t, json.Unmarshal([]byte(`{"action":""}`), &req))
	assert.Equal(t, AuthAction(""), req.ResolvedAction())

	require.NoError(t, json.Unmarshal([]byte(`{"action":"verify"}`), &req))
	assert.Equal(t, AuthActionVerify, req.ResolvedAction())
}

func TestVerifyRequestToken(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{}`, ""},
		{`{"sessionToken":null}`, ""},
		{`{"sessionToken":""}`, ""},
		{`{"sessionToken":false}`, ""},
		{`{"sessionToken":0}`, ""},
		{`{"sessionToken":[]}`, ""},
		{`{"sessionToken":{}}`, ""},
		{`{"sessionToken":"abc"}`, "abc"},
		{`{"sessionToken":123}`, "123"},
		{`{"sessionToken":true}`, "true"},
		{`{"sessionToken":["a"]}`, `["a"]`},
	}

	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			var req VerifyRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			assert.Equal(t, tc.want, req.Token())
		})
	}
}
