package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DominicRaja2005/library-management-system/internal/middleware"
	"github.com/DominicRaja2005/library-management-system/internal/service"
	"github.com/DominicRaja2005/library-management-system/internal/utils"
)

type BookHandler struct {
	Service *service.InventoryService
}

func NewBookHandler(svc *service.InventoryService) *BookHandler {
	return &BookHandler{Service: svc}
}

// GET /api/books
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.Service.ListBooks(r.Context())
	if err != nil {
		writeServiceError(w, "Error fetching books", err)
		return
	}

	count := len(books)
	utils.JSONSuccess(w, http.StatusOK, utils.Envelope{Count: &count, Data: books})
}

// GET /api/books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	book, err := h.Service.GetBook(r.Context(), id)
	if err != nil {
		writeServiceError(w, "Error fetching book", err)
		return
	}

	utils.JSONSuccess(w, http.StatusOK, utils.Envelope{Data: book})
}

// POST /api/books
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var input service.CreateBookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	book, err := h.Service.CreateBook(r.Context(), middleware.UserID(r), input)
	if err != nil {
		writeServiceError(w, "Error adding book", err)
		return
	}

	utils.JSONSuccess(w, http.StatusCreated, utils.Envelope{
		Message: "Book added successfully",
		Data:    book,
	})
}

// PUT /api/books/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input service.UpdateBookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.JSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	book, err := h.Service.UpdateBook(r.Context(), middleware.UserID(r), id, input)
	if err != nil {
		writeServiceError(w, "Error updating book", err)
		return
	}

	utils.JSONSuccess(w, http.StatusOK, utils.Envelope{
		Message: "Book updated successfully",
		Data:    book,
	})
}

// DELETE /api/books/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteBook(r.Context(), middleware.UserID(r), id); err != nil {
		writeServiceError(w, "Error deleting book", err)
		return
	}

	utils.JSONSuccess(w, http.StatusOK, utils.Envelope{Message: "Book deleted successfully"})
}

func writeServiceError(w http.ResponseWriter, fallback string, err error) {
	var validationErr *service.ValidationError
	var conflictErr *service.ConflictError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(w, validationErr.Message, http.StatusBadRequest)
	case errors.As(err, &conflictErr):
		// Conflicts report as 400 with a descriptive message, matching the
		// original API.
		utils.JSONError(w, conflictErr.Message, http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		utils.JSONError(w, "Book not found", http.StatusNotFound)
	default:
		utils.JSONErrorDetail(w, fallback, err.Error(), http.StatusInternalServerError)
	}
}
