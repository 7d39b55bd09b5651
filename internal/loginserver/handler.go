package loginserver

import (
	"log/slog"

	"github.com/sadroeck/heimdall-go/internal/loginagent"
	"github.com/sadroeck/heimdall-go/internal/loginserver/clientpackets"
	"github.com/sadroeck/heimdall-go/internal/loginserver/serverpackets"
	"github.com/sadroeck/heimdall-go/internal/model"
)

// Handler processes decoded login-port requests. One Handler is shared by
// every connection; all per-connection state lives in *session. Grounded
// on the teacher's login.Handler (internal/login/handler.go).
type Handler struct {
	agent   *loginagent.Agent
	servers []model.CharacterServerInfo
}

// NewHandler builds a login handler over the given agent and the
// character-server list advertised on successful login.
func NewHandler(agent *loginagent.Agent, servers []model.CharacterServerInfo) *Handler {
	return &Handler{agent: agent, servers: servers}
}

// Handle dispatches one decoded request, writing any response into buf.
// Returns the number of bytes written (0 = nothing to send) and whether
// the connection should stay open for further reads.
func (h *Handler) Handle(s *session, req clientpackets.Request, buf []byte) (int, bool, error) {
	switch req.Kind {
	case clientpackets.KindKeepAlive:
		if s.State() != StateBeforeLogin {
			slog.Warn("keepalive in unexpected state", "remote", s.remoteIP, "state", s.State())
		}
		return 0, true, nil

	case clientpackets.KindUpdateClientHash:
		s.SetClientHash(req.ClientHash)
		return 0, true, nil

	case clientpackets.KindClientLogin:
		return h.handleClientLogin(s, req.Credentials, buf)

	case clientpackets.KindCodeKey, clientpackets.KindOneTimeToken, clientpackets.KindCharConnect:
		n, err := serverpackets.LoginAborted(buf, model.AbortServerClosed)
		return n, false, err

	default:
		slog.Warn("unhandled login request kind", "kind", req.Kind, "remote", s.remoteIP)
		return 0, true, nil
	}
}

func (h *Handler) handleClientLogin(s *session, creds loginagent.Credentials, buf []byte) (int, bool, error) {
	account, failed := h.agent.Authenticate(creds)
	if failed != nil {
		n, err := serverpackets.LoginFailed(buf, failed)
		return n, true, err
	}

	ticket := h.agent.CreateSession(account)
	s.SetState(StateAuthenticated)
	n, err := serverpackets.LoginSuccessV3(buf, ticket, h.servers)
	return n, false, err
}
