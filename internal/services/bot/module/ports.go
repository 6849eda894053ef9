package module

import (
	dom "wordlebot/internal/services/bot/domain"
	"wordlebot/internal/services/bot/service"
)

// Ports holds the ports exposed by the bot module
type Ports struct {
	Bot    dom.BotPort
	Runner dom.RunnerPort
}

// Adapters are the outside collaborators handed in with modkit.WithPorts
type Adapters = service.Adapters
