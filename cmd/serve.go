package cmd

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DMGiulioRomano/tuning-systems-numbers-music/constants"
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/model"
	"github.com/DMGiulioRomano/tuning-systems-numbers-music/tuning"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves tunings over HTTP",
	Long:  `Serves tunings over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, detail string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

// HandleTuning computes a scale from the posted configuration.
func HandleTuning(w http.ResponseWriter, r *http.Request) {
	var input model.TuningRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if input.Octave == 0 {
		input.Octave = constants.DefaultOctave
	}
	if input.Fundamental <= 0 || input.Octave <= 0 {
		writeError(w, "fundamental and octave must be positive", http.StatusBadRequest)
		return
	}

	scale := tuning.New(tuning.Config{Fundamental: input.Fundamental, Octave: input.Octave})
	res := model.TuningResponse{
		Fundamental: scale.Fundamental,
		Intervals:   tuning.Intervals(scale),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.HealthResponse{Status: "ok"})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	})
}

func serve() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/tuning", HandleTuning).Methods("POST")
	router.HandleFunc("/health", HandleHealth).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	addr := constants.GetAddr()
	log.Info().Str("addr", addr).Msg("Starting tuning server")
	err := http.ListenAndServe(addr, c.Handler(router))
	log.Fatal().Err(err).Msg("server stopped")
}
