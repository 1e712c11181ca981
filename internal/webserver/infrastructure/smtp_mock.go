package infrastructure

import "sync"

type SMTPMock struct {
	calledSend  bool
	lastAddress string
	mu          sync.Mutex
}

func (s *SMTPMock) Send(address, subject, body string) error {
	s.mu.Lock()
	s.calledSend = true
	s.lastAddress = address
	s.mu.Unlock()
	return nil
}

func (s *SMTPMock) From() string {
	return ""
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

func (s *SMTPMock) LastAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAddress
}
