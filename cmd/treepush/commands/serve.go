// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/treepush/cmd/treepush/opts"
	"github.com/walteh/treepush/pkg/upload"
	"gitlab.com/tozd/go/errors"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve command
func NewServeCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		addr     string
		token    string
		gateway  string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload service over HTTP",
		Long: `Serve exposes the upload service as a JSON API with a server-sent
event log stream and Prometheus metrics. One job runs at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			gw, err := ro.OpenGateway(ctx, ro.GatewayName(gateway), ro.Endpoint(endpoint))
			if err != nil {
				return err
			}

			svc := upload.NewService(ctx, gw,
				upload.WithFs(ro.Fs),
				upload.WithServiceLogger(ro.Logger),
				upload.WithServiceMetrics(ro.Metrics),
			)

			if !zerolog.Ctx(ctx).Debug().Enabled() {
				gin.SetMode(gin.ReleaseMode)
			}
			handler := NewHandler(svc, ro.Metrics, ro.Token(token), *zerolog.Ctx(ctx))

			return serve(ctx, addr, NewRouter(handler), svc)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":7860", "listen address")
	cmd.Flags().StringVar(&token, "token", "", "default access token for requests that carry none")
	cmd.Flags().StringVar(&gateway, "gateway", "", "remote gateway")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "override the gateway base URL")

	return cmd
}

// serve runs the server until ctx ends or a signal arrives
func serve(ctx context.Context, addr string, h http.Handler, svc *upload.Service) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		zerolog.Ctx(ctx).Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		svc.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	// closing the service ends the log streams so Shutdown can drain
	svc.Close()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Errorf("shutting down: %w", err)
	}
	return nil
}
