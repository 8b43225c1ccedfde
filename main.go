package main

import (
	"context"

	"github.com/rs/zerolog/log"

	contractx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/contract"
	dispatchx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/dispatch"
	handlerx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/handler"
	resolverx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/resolver"
	storex "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/claims/store"
	"github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/httpapi"
	configx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/pkg/config"
	_ "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/pkg/logger/autoload"
	openrouterx "github.com/Rajib-TE/Claim-Management-Featuring-Agentic-AI/pkg/openrouter"
)

func main() {
	ctx := context.Background()

	claimCfg := configx.MustNew[storex.ClaimStoreConfig]("CLAIM")
	claims, err := storex.NewClaimStore(*claimCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load claim store")
	}
	log.Info().Str("snapshot", claims.SnapshotPath()).Int("claims", claims.Len()).Msg("claim store loaded")

	var archiver contractx.Archiver = storex.NoopArchiver{}
	archiveCfg := configx.MustNew[storex.ArchiveConfig]("CLAIM_ARCHIVE")
	if archiveCfg.DSN != "" {
		archive, err := storex.NewBunClaimArchive(ctx, *archiveCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("connect claim archive")
		}
		defer archive.Close()
		archiver = archive
		log.Info().Msg("claim archive enabled")
	}

	wf, err := handlerx.NewWorkflow(
		claims,
		storex.NewPaymentStore(),
		storex.NewClosureStore(),
		handlerx.WithArchiver(archiver),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("build workflow")
	}

	dispatcher, err := dispatchx.New(wf)
	if err != nil {
		log.Fatal().Err(err).Msg("build dispatcher")
	}

	// The resolver is optional: without an API key the operation endpoints
	// still serve, only /ask is disabled.
	var intentResolver contractx.Resolver
	if llmCfg, err := configx.New[openrouterx.Config]("OPENROUTER"); err == nil {
		r, err := resolverx.NewOpenAIResolver(*llmCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("build intent resolver")
		}
		intentResolver = r
	} else {
		log.Warn().Err(err).Msg("intent resolver disabled")
	}

	server, err := httpapi.New(wf, dispatcher, intentResolver)
	if err != nil {
		log.Fatal().Err(err).Msg("build http server")
	}

	httpCfg := configx.MustNew[httpapi.Config]("HTTP")
	if err := server.ListenAndServe(*httpCfg); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}
