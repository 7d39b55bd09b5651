package serverpackets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadroeck/heimdall-go/internal/constants"
	"github.com/sadroeck/heimdall-go/internal/model"
	"github.com/sadroeck/heimdall-go/internal/wire"
)

func TestLoginSuccessV3SizeAndLayout(t *testing.T) {
	servers := []model.CharacterServerInfo{
		{Name: "Server1", IP: []byte{127, 0, 0, 1}, Port: 2111, Activity: 0, Type: 1},
	}
	session := &model.AuthenticatedSession{AccountID: 42, AuthenticationCode: 0x11223344, UserLevel: 0}

	need := LoginSuccessV3Size(len(servers))
	buf := make([]byte, need)
	n, err := LoginSuccessV3(buf, session, servers)
	require.NoError(t, err)
	assert.Equal(t, need, n)

	assert.Equal(t, constants.OpLoginSuccessV3, wire.GetU16(buf[0:2]))
	assert.Equal(t, uint16(need), wire.GetU16(buf[2:4]))
	assert.Equal(t, uint32(0x11223344), wire.GetU32(buf[4:8]))
	assert.Equal(t, uint32(42), wire.GetU32(buf[8:12]))
}

func TestLoginSuccessV3OverflowsOnShortBuffer(t *testing.T) {
	session := &model.AuthenticatedSession{AccountID: 1}
	buf := make([]byte, 4)
	_, err := LoginSuccessV3(buf, session, nil)
	var overflow wire.OverflowError
	require.ErrorAs(t, err, &overflow)
}

func TestLoginFailedEncodesBanTime(t *testing.T) {
	buf := make([]byte, LoginFailedSize)
	failure := &model.LoginFailed{Reason: model.ReasonBannedUntil, BannedUntil: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)}

	n, err := LoginFailed(buf, failure)
	require.NoError(t, err)
	assert.Equal(t, LoginFailedSize, n)
	assert.Equal(t, constants.OpLoginFailed, wire.GetU16(buf[0:2]))
	assert.Equal(t, uint32(model.ReasonBannedUntil.ErrorCode()), wire.GetU32(buf[2:6]))
}

func TestLoginAbortedEncodesReason(t *testing.T) {
	buf := make([]byte, LoginAbortedSize)
	n, err := LoginAborted(buf, model.AbortAlreadyLoggedIn)
	require.NoError(t, err)
	assert.Equal(t, LoginAbortedSize, n)
	assert.Equal(t, constants.OpLoginAborted, wire.GetU16(buf[0:2]))
	assert.Equal(t, byte(model.AbortAlreadyLoggedIn), buf[2])
}
