package client

type Clients struct {
	*HubAPI
	*SpeechAPI
}

func InitClients(hub *HubAPI, speech *SpeechAPI) Clients {
	return Clients{
		HubAPI:    hub,
		SpeechAPI: speech,
	}
}
