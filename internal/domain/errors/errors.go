package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// AIProviderNotFoundError indica que un proveedor de IA no fue encontrado
type AIProviderNotFoundError struct {
	Provider string
}

func (e *AIProviderNotFoundError) Error() string {
	return fmt.Sprintf("Proveedor de IA '%s' no encontrado en el registro", e.Provider)
}

// NewAIProviderNotFoundError crea un nuevo error de proveedor no encontrado
func NewAIProviderNotFoundError(provider string) *AIProviderNotFoundError {
	return &AIProviderNotFoundError{Provider: provider}
}

// AIProviderNotConfiguredError indica que un proveedor de IA no está configurado
type AIProviderNotConfiguredError struct {
	Provider string
	Reason   string
}

func (e *AIProviderNotConfiguredError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Proveedor IA '%s' no configurado: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("Proveedor IA '%s' no configurado", e.Provider)
}

// NewAIProviderNotConfiguredError crea un nuevo error de proveedor no configurado
func NewAIProviderNotConfiguredError(provider, reason string) *AIProviderNotConfiguredError {
	return &AIProviderNotConfiguredError{
		Provider: provider,
		Reason:   reason,
	}
}

// VCSProviderNotFoundError indica que un proveedor VCS no fue encontrado
type VCSProviderNotFoundError struct {
	Provider string
}

func (e *VCSProviderNotFoundError) Error() string {
	return fmt.Sprintf("Proveedor VCS '%s' no encontrado en el registro", e.Provider)
}

// NewVCSProviderNotFoundError crea un nuevo error de proveedor VCS no encontrado
func NewVCSProviderNotFoundError(provider string) *VCSProviderNotFoundError {
	return &VCSProviderNotFoundError{Provider: provider}
}

// CompareFailedError indica que el compare de ramas falló en la plataforma
type CompareFailedError struct {
	Base    string
	Head    string
	Status  int
	Message string
	Err     error
}

func (e *CompareFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("compare %s...%s falló (status %d): %s", e.Base, e.Head, e.Status, e.Message)
	}
	return fmt.Sprintf("compare %s...%s falló: %v", e.Base, e.Head, e.Err)
}

func (e *CompareFailedError) Unwrap() error {
	return e.Err
}

// NewCompareFailedError crea un nuevo error de compare fallido
func NewCompareFailedError(base, head string, status int, message string, err error) *CompareFailedError {
	return &CompareFailedError{
		Base:    base,
		Head:    head,
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// PRCreationFailedError indica que la creación del PR falló en la plataforma
type PRCreationFailedError struct {
	Head   string
	Base   string
	Status int
	Err    error
}

func (e *PRCreationFailedError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("creación del PR %s → %s falló (status %d): %v", e.Head, e.Base, e.Status, e.Err)
	}
	return fmt.Sprintf("creación del PR %s → %s falló: %v", e.Head, e.Base, e.Err)
}

func (e *PRCreationFailedError) Unwrap() error {
	return e.Err
}

// NewPRCreationFailedError crea un nuevo error de creación de PR fallida
func NewPRCreationFailedError(head, base string, status int, err error) *PRCreationFailedError {
	return &PRCreationFailedError{
		Head:   head,
		Base:   base,
		Status: status,
		Err:    err,
	}
}
