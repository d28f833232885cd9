package server

// Server объединяет HTTP-обработчики отдельных сущностей: сессии поиска и
// статичный документ.
type Server struct {
	SessionServer
	DocumentServer
}

func NewServer(
	sessionServer SessionServer,
	documentServer DocumentServer,
) Server {
	return Server{
		SessionServer:  sessionServer,
		DocumentServer: documentServer,
	}
}
