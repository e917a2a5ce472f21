package api

import (
	"github.com/convox/stdapi"
	"github.com/freshhuk/numbersort/pkg/session"
)

type Server struct {
	*stdapi.Server
	Session *session.Session
}

func New() *Server {
	return NewWithSession(session.New(session.Options{}))
}

func NewWithSession(sess *session.Session) *Server {
	s := &Server{
		Server:  stdapi.New("numbersort", "numbersort"),
		Session: sess,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.Router.Route("GET", "/sequence", s.SequenceGet)
	s.Router.Route("POST", "/sequences", s.SequenceCreate)
	s.Router.Route("POST", "/sequences/reseed", s.SequenceReseed)
	s.Router.Route("POST", "/sort", s.SortCreate)
	s.Router.Route("SOCKET", "/sort/stream", s.SortStream)
}
