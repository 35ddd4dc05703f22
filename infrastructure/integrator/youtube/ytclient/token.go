package ytclient

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/yt-analytics-sync/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	youtube "google.golang.org/api/youtube/v3"
	youtubeanalytics "google.golang.org/api/youtubeanalytics/v2"
)

// Escopos mínimos: leitura do catálogo e dos relatórios, inclusive receita.
var scopes = []string{
	youtube.YoutubeReadonlyScope,
	youtubeanalytics.YtAnalyticsReadonlyScope,
	youtubeanalytics.YtAnalyticsMonetaryReadonlyScope,
}

// TokenManager monta o TokenSource OAuth a partir do arquivo de credenciais
// do aplicativo e do token previamente autorizado via fluxo interativo.
// A renovação com o refresh token fica a cargo do próprio TokenSource.
type TokenManager struct {
	cfg *config.Config
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{cfg: cfg}
}

func (m *TokenManager) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	secret, err := os.ReadFile(m.cfg.YouTube.ClientSecretFile)
	if err != nil {
		return nil, errors.Wrap(err, "lendo o arquivo de credenciais do aplicativo")
	}

	conf, err := google.ConfigFromJSON(secret, scopes...)
	if err != nil {
		return nil, errors.Wrap(err, "interpretando as credenciais do aplicativo")
	}

	tokenFile, err := os.Open(m.cfg.YouTube.TokenFile)
	if err != nil {
		return nil, errors.Wrap(err, "abrindo o token autorizado")
	}
	defer tokenFile.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(tokenFile).Decode(token); err != nil {
		return nil, errors.Wrap(err, "decodificando o token autorizado")
	}

	return conf.TokenSource(ctx, token), nil
}
