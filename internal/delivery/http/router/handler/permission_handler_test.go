package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"registro/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// stubPermissionUsecase records the ids it receives and replies with whatever
// the test has primed.
type stubPermissionUsecase struct {
	out *usecase.PermissionTreeOutput
	err error

	gotProfileID     int64
	gotSystemID      int64
	gotLegalEntityID int64
}

func (s *stubPermissionUsecase) ResolveTree(_ context.Context, profileID, systemID, legalEntityID int64) (*usecase.PermissionTreeOutput, error) {
	s.gotProfileID = profileID
	s.gotSystemID = systemID
	s.gotLegalEntityID = legalEntityID
	return s.out, s.err
}

func TestPermissionHandler_ResolveTree(t *testing.T) {
	stub := &stubPermissionUsecase{
		out: &usecase.PermissionTreeOutput{ProfileID: 9, ProfileName: "Oficial", SystemID: 2},
	}
	h := NewPermissionHandler(stub, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/perfis/9/modulos-permissoes?id_sistema=2&id_pessoa_juridica=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	dispatch(c, h.ResolveTree)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), stub.gotProfileID)
	assert.Equal(t, int64(2), stub.gotSystemID)
	assert.Equal(t, int64(5), stub.gotLegalEntityID)
	assert.Contains(t, rec.Body.String(), `"perfil_nome":"Oficial"`)
}

func TestPermissionHandler_ResolveTree_MissingQueryIDs(t *testing.T) {
	h := NewPermissionHandler(&stubPermissionUsecase{}, testLogger())

	for name, target := range map[string]string{
		"sem id_sistema":         "/perfis/9/modulos-permissoes?id_pessoa_juridica=5",
		"sem id_pessoa_juridica": "/perfis/9/modulos-permissoes?id_sistema=2",
	} {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho()
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues("9")

			dispatch(c, h.ResolveTree)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}
}
