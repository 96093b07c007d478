package domain

const (
	MsgPong           = "Pong!"
	MsgUserCreated    = "User criado com sucesso"
	MsgUserDeleted    = "User deletado com sucesso"
	MsgAlreadyExists  = "%s já existe."
	MsgUserIDNotFound = "'id' não encontrado."
	MsgInvalidRequest = "Parâmetros inválidos na requisição"
	MsgUnexpected     = "Erro inesperado"
)
