package client

type Clients struct {
	*TelegramGateAPI
}

func InitClients(botToken string) Clients {
	return Clients{
		TelegramGateAPI: NewTelegramGateAPI(botToken),
	}
}
