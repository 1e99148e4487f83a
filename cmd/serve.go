package cmd

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/connorsmacd/Cbb/constants"
	"github.com/connorsmacd/Cbb/fraction"
	"github.com/connorsmacd/Cbb/metre"
	"github.com/connorsmacd/Cbb/model"
	"github.com/connorsmacd/Cbb/notevalue"
	"github.com/connorsmacd/Cbb/powerof2"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// structure is loaded once before serving and only read by the handlers.
var structure *metre.Structure

var errNoStructure = errors.New("no metric structure loaded")

var serveFile string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveFile, "file", "f", "", "midi file whose metric structure is served")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves note value and metre queries over http",
	Long:  `Serves note value and metre queries over http on the configured port.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadServeFiles(serveFile); err != nil {
			return err
		}
		serve()
		return nil
	},
}

// LoadServeFiles reads the structure served by /metre. An empty path serves
// the configured defaults.
func LoadServeFiles(path string) error {
	if path == "" {
		st, err := metre.NewStructure(constants.GetDefaultTimeSignature(), constants.GetDefaultTempo())
		if err != nil {
			return err
		}
		structure = st
		return nil
	}
	st, err := loadStructure(path)
	if err != nil {
		return err
	}
	structure = st
	return nil
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notevalue", HandleNoteValue).Methods("POST")
	router.HandleFunc("/decompose", HandleDecompose).Methods("POST")
	router.HandleFunc("/metre", HandleMetre).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Printf("%d: %v\n", status, err)
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleNoteValue(w http.ResponseWriter, r *http.Request) {
	var input model.NoteValueRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	base, err := powerof2.FromFraction(input.Base)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	nv := notevalue.NewTuplet(base, notevalue.Tuplet(input.Tuplet), input.Dots)
	if !nv.IsDefined() {
		writeError(w, http.StatusBadRequest, errors.New("note value does not fit: tuplet must be at least 2 and dots at most "+strconv.Itoa(notevalue.MaxDots)))
		return
	}
	writeJSON(w, http.StatusOK, toModelNoteValue(nv))
}

func HandleDecompose(w http.ResponseWriter, r *http.Request) {
	var input model.DecomposeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tied, err := notevalue.TiedFromValue(input.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.DecomposeResponse{Value: input.Value.Reduce(), Tied: make([]model.NoteValue, 0, tied.Len())}
	for _, nv := range tied.Values() {
		res.Tied = append(res.Tied, toModelNoteValue(nv))
	}
	if nv, err := notevalue.FromValue(input.Value); err == nil {
		single := toModelNoteValue(nv)
		res.Single = &single
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleMetre lists every change, or with a bar query parameter (and an
// optional offset) the changes in effect at that position.
func HandleMetre(w http.ResponseWriter, r *http.Request) {
	if structure == nil {
		writeError(w, http.StatusServiceUnavailable, errNoStructure)
		return
	}
	query := r.URL.Query()
	if query.Get("bar") == "" {
		writeJSON(w, http.StatusOK, metreResponse(structure))
		return
	}

	bar, err := strconv.ParseInt(query.Get("bar"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	offset := fraction.Zero
	if text := query.Get("offset"); text != "" {
		offset, err = fraction.Parse(text)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	pos, err := metre.NewPosition(bar, offset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ts := structure.LatestTimeSignatureChange(pos)
	tempo := structure.LatestTempoChange(pos)
	writeJSON(w, http.StatusOK, model.MetreAtResponse{
		Position:      pos.String(),
		TimeSignature: model.TimeSignatureChange{Position: ts.Position.String(), TimeSignature: ts.Value},
		Tempo:         model.TempoChange{Position: tempo.Position.String(), Tempo: tempo.Value},
	})
}

func metreResponse(st *metre.Structure) model.MetreResponse {
	var res model.MetreResponse
	for _, c := range st.TimeSignatureChanges() {
		res.TimeSignatures = append(res.TimeSignatures, model.TimeSignatureChange{Position: c.Position.String(), TimeSignature: c.Value})
	}
	for _, c := range st.TempoChanges() {
		res.Tempos = append(res.Tempos, model.TempoChange{Position: c.Position.String(), Tempo: c.Value})
	}
	return res
}

func serve() {
	addr := ":" + constants.GetPort()
	log.Printf("Listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}
