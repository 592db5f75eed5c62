package model

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"vpndash/internal/api"
	"vpndash/internal/config"
	"vpndash/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *Model {
	return InitialModel(config.GetDefaultConfig(), nil, false, nil)
}

func TestInitialModel_Defaults(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, ModeMainDashboard, m.CurrentAppMode)
	assert.Equal(t, config.DefaultServerID, m.SelectedServer)
	assert.Nil(t, m.Snapshot)
	assert.False(t, m.FastPollActive)
	assert.True(t, m.ConnectEnabled())
	assert.False(t, m.DisconnectEnabled())
}

func TestStartFastPoll_Twice_LeavesOneGeneration(t *testing.T) {
	m := newTestModel()

	first := m.StartFastPoll()
	firstGen := m.FastGen
	second := m.StartFastPoll()

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.True(t, m.FastPollActive)
	assert.Equal(t, firstGen+1, m.FastGen, "the second start supersedes the first")

	m.StopFastPoll()
	assert.False(t, m.FastPollActive)
	assert.Equal(t, firstGen+2, m.FastGen)
}

func TestStopAllTimers_BumpsEveryGeneration(t *testing.T) {
	m := newTestModel()
	m.StartFastPoll()
	status, uptime, fast := m.StatusGen, m.UptimeGen, m.FastGen

	m.StopAllTimers()

	assert.NotEqual(t, status, m.StatusGen)
	assert.NotEqual(t, uptime, m.UptimeGen)
	assert.NotEqual(t, fast, m.FastGen)
	assert.False(t, m.FastPollActive)
}

func TestButtonsFollowConnectionState(t *testing.T) {
	m := newTestModel()
	m.Snapshot = &api.StatusSnapshot{Connected: true}
	assert.False(t, m.ConnectEnabled())
	assert.True(t, m.DisconnectEnabled())

	m.ActionInFlight = ActionDisconnect
	assert.False(t, m.DisconnectEnabled(), "in-flight action disables both controls")
}

func TestNotifications(t *testing.T) {
	m := newTestModel()

	cmd := m.AddNotification(NotificationError, "boom")
	require.NotNil(t, cmd)
	require.Len(t, m.Notifications, 1)
	id := m.Notifications[0].ID

	m.AddNotification(NotificationSuccess, "ok")
	m.DismissNotification(id)
	require.Len(t, m.Notifications, 1)
	assert.Equal(t, "ok", m.Notifications[0].Text)

	m.DismissNotification(9999)
	assert.Len(t, m.Notifications, 1)

	m.DismissNewestNotification()
	assert.Empty(t, m.Notifications)
	m.DismissNewestNotification()
}

func TestNotifications_CappedAtMax(t *testing.T) {
	m := newTestModel()
	for i := 0; i < MaxNotifications+3; i++ {
		m.AddNotification(NotificationInfo, fmt.Sprintf("n%d", i))
	}
	require.Len(t, m.Notifications, MaxNotifications)
	assert.Equal(t, fmt.Sprintf("n%d", MaxNotifications+2), m.Notifications[MaxNotifications-1].Text)
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := newTestModel()
	for i := 0; i < MaxActivityLogLines+10; i++ {
		level := logging.LevelInfo
		if i%2 == 1 {
			level = logging.LevelError
		}
		AddRawLineToActivityLog(m, level, fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Len(t, m.ActivityLogLevels, MaxActivityLogLines, "levels stay aligned with lines")
	assert.Equal(t, "line 10", m.ActivityLog[0])
	assert.Equal(t, logging.LevelInfo, m.ActivityLogLevels[0])
	assert.Equal(t, logging.LevelError, m.ActivityLogLevels[1])
	assert.True(t, m.ActivityLogDirty)
}

func TestStyledActivityLog_KeepsLineText(t *testing.T) {
	m := newTestModel()
	AddRawLineToActivityLog(m, logging.LevelWarn, "[WARN] [Poller] slow")
	AddRawLineToActivityLog(m, logging.LevelError, "[ERROR] [Action] boom")

	out := StyledActivityLog(m)
	assert.Contains(t, out, "[WARN] [Poller] slow")
	assert.Contains(t, out, "[ERROR] [Action] boom")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestSelectedServerName(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, config.DefaultServerID, m.SelectedServerName())

	m.Servers = []api.ServerDescriptor{{ID: "ssh-tunnel", Name: "SSH Tunnel"}}
	assert.Equal(t, "SSH Tunnel", m.SelectedServerName())
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelInfo, Subsystem: "Test", Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	entryMsg, ok := msg.(NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entryMsg.Entry.Message)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}
