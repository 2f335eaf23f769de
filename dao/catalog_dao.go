// api/dao/catalog_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	hazard_neo4j "github.com/dev-mohitbeniwal/hazard/api/model/neo4j"
)

// CatalogDAO stores observation and mitigation catalogs. Values hang off their
// type through a VALUE_OF relationship.
type CatalogDAO struct {
	*neo4jDAO
}

func (dao *CatalogDAO) upsertType(ctx context.Context, label, id string, props map[string]interface{}) (neo4j.Node, error) {
	start := time.Now()
	query := `
        MERGE (t:` + label + ` {id: $id})
        SET t += $props
        RETURN t
        `
	node, err := dao.writeNode(ctx, query, map[string]interface{}{"id": id, "props": props}, "t")
	if err := logOp("upsert "+label, start, err, zap.String("id", id)); err != nil {
		return neo4j.Node{}, err
	}
	return *node, nil
}

// upsertValue returns a nil node when the parent type does not exist.
func (dao *CatalogDAO) upsertValue(ctx context.Context, typeLabel, valueLabel, typeID, id string, props map[string]interface{}) (*neo4j.Node, error) {
	start := time.Now()
	query := `
        MATCH (t:` + typeLabel + ` {id: $typeId})
        MERGE (v:` + valueLabel + ` {id: $id})
        SET v += $props
        MERGE (v)-[:` + hazard_neo4j.RelValueOf + `]->(t)
        RETURN v
        `
	params := map[string]interface{}{"typeId": typeID, "id": id, "props": props}
	node, err := dao.writeNode(ctx, query, params, "v")
	if err := logOp("upsert "+valueLabel, start, err, zap.String("id", id), zap.String("typeID", typeID)); err != nil {
		return nil, err
	}
	return node, nil
}

func (dao *CatalogDAO) nodesByID(ctx context.Context, label string, ids []string) ([]neo4j.Node, error) {
	start := time.Now()
	query := `MATCH (n:` + label + `) WHERE n.id IN $ids RETURN n ORDER BY n.id`
	nodes, err := dao.queryNodes(ctx, query, map[string]interface{}{"ids": ids}, "n")
	if err := logOp("get "+label, start, err, zap.Int("ids", len(ids))); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (dao *CatalogDAO) listNodes(ctx context.Context, label, typeID string) ([]neo4j.Node, error) {
	start := time.Now()
	query := `MATCH (n:` + label + `) RETURN n ORDER BY n.name, n.id`
	params := map[string]interface{}{}
	if typeID != "" {
		query = `
            MATCH (n:` + label + `)-[:` + hazard_neo4j.RelValueOf + `]->(t {id: $typeId})
            RETURN n ORDER BY n.createdAt, n.id
            `
		params["typeId"] = typeID
	}
	nodes, err := dao.queryNodes(ctx, query, params, "n")
	if err := logOp("list "+label, start, err, zap.String("typeID", typeID)); err != nil {
		return nil, err
	}
	return nodes, nil
}

// deleteType removes a type node together with its values.
func (dao *CatalogDAO) deleteType(ctx context.Context, typeLabel, valueLabel, id string) (int, error) {
	start := time.Now()
	query := `
        MATCH (t:` + typeLabel + ` {id: $id})
        OPTIONAL MATCH (v:` + valueLabel + `)-[:` + hazard_neo4j.RelValueOf + `]->(t)
        DETACH DELETE v, t
        `
	deleted, err := dao.deleteNodes(ctx, query, map[string]interface{}{"id": id})
	if err := logOp("delete "+typeLabel, start, err, zap.String("id", id)); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (dao *CatalogDAO) deleteNode(ctx context.Context, label, id string) (int, error) {
	start := time.Now()
	query := `MATCH (n:` + label + ` {id: $id}) DETACH DELETE n`
	deleted, err := dao.deleteNodes(ctx, query, map[string]interface{}{"id": id})
	if err := logOp("delete "+label, start, err, zap.String("id", id)); err != nil {
		return 0, err
	}
	return deleted, nil
}

func (dao *CatalogDAO) CreateObservationType(ctx context.Context, observationType model.ObservationType) (*model.ObservationType, error) {
	if observationType.ID == "" {
		observationType.ID = uuid.New().String()
	}
	if observationType.CreatedAt.IsZero() {
		observationType.CreatedAt = time.Now()
	}
	logger.Info("Creating observation type", zap.String("observationTypeID", observationType.ID))

	node, err := dao.upsertType(ctx, hazard_neo4j.LabelObservationType, observationType.ID, map[string]interface{}{
		hazard_neo4j.AttrName: observationType.Name,
		"description":         observationType.Description,
		"valueType":           string(observationType.ValueType),
		"multiple":            observationType.Multiple,
		"createdAt":           formatTime(observationType.CreatedAt),
	})
	if err != nil {
		return nil, err
	}
	return mapNodeToObservationType(node), nil
}

func (dao *CatalogDAO) GetObservationType(ctx context.Context, typeID string) (*model.ObservationType, error) {
	nodes, err := dao.nodesByID(ctx, hazard_neo4j.LabelObservationType, []string{typeID})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, hazard_errors.ErrObservationTypeNotFound
	}
	return mapNodeToObservationType(nodes[0]), nil
}

// GetObservationTypes returns the types found among typeIDs; missing ids are skipped
func (dao *CatalogDAO) GetObservationTypes(ctx context.Context, typeIDs []string) ([]model.ObservationType, error) {
	nodes, err := dao.nodesByID(ctx, hazard_neo4j.LabelObservationType, typeIDs)
	if err != nil {
		return nil, err
	}
	types := make([]model.ObservationType, 0, len(nodes))
	for _, node := range nodes {
		types = append(types, *mapNodeToObservationType(node))
	}
	return types, nil
}

func (dao *CatalogDAO) ListObservationTypes(ctx context.Context) ([]model.ObservationType, error) {
	nodes, err := dao.listNodes(ctx, hazard_neo4j.LabelObservationType, "")
	if err != nil {
		return nil, err
	}
	types := make([]model.ObservationType, 0, len(nodes))
	for _, node := range nodes {
		types = append(types, *mapNodeToObservationType(node))
	}
	return types, nil
}

func (dao *CatalogDAO) DeleteObservationType(ctx context.Context, typeID string) error {
	deleted, err := dao.deleteType(ctx, hazard_neo4j.LabelObservationType, hazard_neo4j.LabelObservationValue, typeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return hazard_errors.ErrObservationTypeNotFound
	}
	return nil
}

func (dao *CatalogDAO) CreateObservationValue(ctx context.Context, value model.ObservationValue) (*model.ObservationValue, error) {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = time.Now()
	}
	logger.Info("Creating observation value",
		zap.String("observationValueID", value.ID),
		zap.String("observationTypeID", value.ObservationTypeID))

	node, err := dao.upsertValue(ctx, hazard_neo4j.LabelObservationType, hazard_neo4j.LabelObservationValue,
		value.ObservationTypeID, value.ID, map[string]interface{}{
			hazard_neo4j.AttrObservationTypeID: value.ObservationTypeID,
			"value":                            value.Value,
			"description":                      value.Description,
			"createdAt":                        formatTime(value.CreatedAt),
		})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, hazard_errors.ErrObservationTypeNotFound
	}
	return mapNodeToObservationValue(*node), nil
}

// GetObservationValues returns the values found among valueIDs; missing ids are skipped
func (dao *CatalogDAO) GetObservationValues(ctx context.Context, valueIDs []string) ([]model.ObservationValue, error) {
	nodes, err := dao.nodesByID(ctx, hazard_neo4j.LabelObservationValue, valueIDs)
	if err != nil {
		return nil, err
	}
	values := make([]model.ObservationValue, 0, len(nodes))
	for _, node := range nodes {
		values = append(values, *mapNodeToObservationValue(node))
	}
	return values, nil
}

func (dao *CatalogDAO) ListObservationValues(ctx context.Context, typeID string) ([]model.ObservationValue, error) {
	nodes, err := dao.listNodes(ctx, hazard_neo4j.LabelObservationValue, typeID)
	if err != nil {
		return nil, err
	}
	values := make([]model.ObservationValue, 0, len(nodes))
	for _, node := range nodes {
		values = append(values, *mapNodeToObservationValue(node))
	}
	return values, nil
}

func (dao *CatalogDAO) DeleteObservationValue(ctx context.Context, valueID string) error {
	deleted, err := dao.deleteNode(ctx, hazard_neo4j.LabelObservationValue, valueID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return hazard_errors.ErrObservationValueNotFound
	}
	return nil
}

func (dao *CatalogDAO) CreateMitigationType(ctx context.Context, mitigationType model.MitigationType) (*model.MitigationType, error) {
	if mitigationType.ID == "" {
		mitigationType.ID = uuid.New().String()
	}
	if mitigationType.CreatedAt.IsZero() {
		mitigationType.CreatedAt = time.Now()
	}
	logger.Info("Creating mitigation type", zap.String("mitigationTypeID", mitigationType.ID))

	node, err := dao.upsertType(ctx, hazard_neo4j.LabelMitigationType, mitigationType.ID, map[string]interface{}{
		hazard_neo4j.AttrName: mitigationType.Name,
		"description":         mitigationType.Description,
		"valueType":           string(mitigationType.ValueType),
		"multiple":            mitigationType.Multiple,
		"createdAt":           formatTime(mitigationType.CreatedAt),
	})
	if err != nil {
		return nil, err
	}
	return mapNodeToMitigationType(node), nil
}

func (dao *CatalogDAO) GetMitigationType(ctx context.Context, typeID string) (*model.MitigationType, error) {
	nodes, err := dao.nodesByID(ctx, hazard_neo4j.LabelMitigationType, []string{typeID})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, hazard_errors.ErrMitigationTypeNotFound
	}
	return mapNodeToMitigationType(nodes[0]), nil
}

func (dao *CatalogDAO) ListMitigationTypes(ctx context.Context) ([]model.MitigationType, error) {
	nodes, err := dao.listNodes(ctx, hazard_neo4j.LabelMitigationType, "")
	if err != nil {
		return nil, err
	}
	types := make([]model.MitigationType, 0, len(nodes))
	for _, node := range nodes {
		types = append(types, *mapNodeToMitigationType(node))
	}
	return types, nil
}

func (dao *CatalogDAO) DeleteMitigationType(ctx context.Context, typeID string) error {
	deleted, err := dao.deleteType(ctx, hazard_neo4j.LabelMitigationType, hazard_neo4j.LabelMitigationValue, typeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return hazard_errors.ErrMitigationTypeNotFound
	}
	return nil
}

func (dao *CatalogDAO) CreateMitigationValue(ctx context.Context, value model.MitigationValue) (*model.MitigationValue, error) {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = time.Now()
	}
	logger.Info("Creating mitigation value",
		zap.String("mitigationValueID", value.ID),
		zap.String("mitigationTypeID", value.MitigationTypeID))

	node, err := dao.upsertValue(ctx, hazard_neo4j.LabelMitigationType, hazard_neo4j.LabelMitigationValue,
		value.MitigationTypeID, value.ID, map[string]interface{}{
			hazard_neo4j.AttrMitigationTypeID: value.MitigationTypeID,
			"value":                           value.Value,
			"description":                     value.Description,
			"category":                        string(value.Category),
			"createdAt":                       formatTime(value.CreatedAt),
		})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, hazard_errors.ErrMitigationTypeNotFound
	}
	return mapNodeToMitigationValue(*node), nil
}

func (dao *CatalogDAO) GetMitigationValue(ctx context.Context, valueID string) (*model.MitigationValue, error) {
	nodes, err := dao.nodesByID(ctx, hazard_neo4j.LabelMitigationValue, []string{valueID})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, hazard_errors.ErrMitigationValueNotFound
	}
	return mapNodeToMitigationValue(nodes[0]), nil
}

func (dao *CatalogDAO) ListMitigationValues(ctx context.Context, typeID string) ([]model.MitigationValue, error) {
	nodes, err := dao.listNodes(ctx, hazard_neo4j.LabelMitigationValue, typeID)
	if err != nil {
		return nil, err
	}
	values := make([]model.MitigationValue, 0, len(nodes))
	for _, node := range nodes {
		values = append(values, *mapNodeToMitigationValue(node))
	}
	return values, nil
}

func (dao *CatalogDAO) DeleteMitigationValue(ctx context.Context, valueID string) error {
	deleted, err := dao.deleteNode(ctx, hazard_neo4j.LabelMitigationValue, valueID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return hazard_errors.ErrMitigationValueNotFound
	}
	return nil
}

func mapNodeToObservationType(node neo4j.Node) *model.ObservationType {
	props := node.Props
	return &model.ObservationType{
		ID:          stringProp(props, hazard_neo4j.AttrID),
		Name:        stringProp(props, hazard_neo4j.AttrName),
		Description: stringProp(props, "description"),
		ValueType:   model.ValueType(stringProp(props, "valueType")),
		Multiple:    boolProp(props, "multiple"),
		CreatedAt:   parseTime(props["createdAt"]),
	}
}

func mapNodeToObservationValue(node neo4j.Node) *model.ObservationValue {
	props := node.Props
	return &model.ObservationValue{
		ID:                stringProp(props, hazard_neo4j.AttrID),
		ObservationTypeID: stringProp(props, hazard_neo4j.AttrObservationTypeID),
		Value:             stringProp(props, "value"),
		Description:       stringProp(props, "description"),
		CreatedAt:         parseTime(props["createdAt"]),
	}
}

func mapNodeToMitigationType(node neo4j.Node) *model.MitigationType {
	props := node.Props
	return &model.MitigationType{
		ID:          stringProp(props, hazard_neo4j.AttrID),
		Name:        stringProp(props, hazard_neo4j.AttrName),
		Description: stringProp(props, "description"),
		ValueType:   model.ValueType(stringProp(props, "valueType")),
		Multiple:    boolProp(props, "multiple"),
		CreatedAt:   parseTime(props["createdAt"]),
	}
}

func mapNodeToMitigationValue(node neo4j.Node) *model.MitigationValue {
	props := node.Props
	return &model.MitigationValue{
		ID:               stringProp(props, hazard_neo4j.AttrID),
		MitigationTypeID: stringProp(props, hazard_neo4j.AttrMitigationTypeID),
		Value:            stringProp(props, "value"),
		Description:      stringProp(props, "description"),
		Category:         model.MitigationCategory(stringProp(props, "category")),
		CreatedAt:        parseTime(props["createdAt"]),
	}
}
