package service

import (
	"github.com/lshigami/Bandicoot/internal/jsonld"
	"github.com/lshigami/Bandicoot/internal/model"
	"github.com/rs/zerolog/log"
)

// CheckpointService exposes the JSON-LD converter to the HTTP layer.
type CheckpointService interface {
	ExportToJSONLD(cp *model.Checkpoint, isCreation bool) (*jsonld.Dataset, error)
	ImportFromJSONLD(ds *jsonld.Dataset) (*model.Checkpoint, error)
}

type checkpointService struct {
	converter *jsonld.Converter
}

func NewCheckpointService() CheckpointService {
	return &checkpointService{converter: jsonld.NewConverter(nil)}
}

func (s *checkpointService) ExportToJSONLD(cp *model.Checkpoint, isCreation bool) (*jsonld.Dataset, error) {
	ds, err := s.converter.Export(cp, isCreation)
	if err != nil {
		log.Error().Err(err).Msg("ExportToJSONLD: conversion failed")
		return nil, err
	}
	log.Info().Int("questions", len(ds.HasPart)).Bool("isCreation", isCreation).Msg("ExportToJSONLD: checkpoint exported")
	return ds, nil
}

func (s *checkpointService) ImportFromJSONLD(ds *jsonld.Dataset) (*model.Checkpoint, error) {
	cp, err := s.converter.Import(ds)
	if err != nil {
		log.Error().Err(err).Msg("ImportFromJSONLD: conversion failed")
		return nil, err
	}
	log.Info().Int("questions", len(cp.Checkpoint)).Bool("hasMetadata", cp.DatasetMetadata != nil).Msg("ImportFromJSONLD: checkpoint imported")
	return cp, nil
}
