package model

import "net"

// CharacterServerInfo is one entry of the character-server list the login
// server advertises to an authenticated client (spec.md §4.1 LoginSuccessV3
// per-server 160-byte record; §6 configuration). At most 5 are sent per the
// StackVec<[_; 5]> bound in original_source/api/src/login/response.rs.
type CharacterServerInfo struct {
	Name     string
	IP       net.IP
	Port     uint16
	Activity uint16
	Type     uint16
}

// MaxCharacterServers bounds the advertised server list (spec.md §4.1).
const MaxCharacterServers = 5
