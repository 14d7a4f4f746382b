package loader

// Query shapes per the row-source contract. All placeholders are positional.
const (
	// latestGraphQuery returns the single row holding the highest version
	// of a name. Versions are unique per name by data-integrity
	// precondition; ties are not resolved here.
	latestGraphQuery = `
SELECT id, name, version
  FROM wf_graph
 WHERE name = ?
   AND version = (SELECT MAX(version) FROM wf_graph WHERE name = ?)`

	// exactGraphQuery returns the row for one (name, version) pair.
	exactGraphQuery = `
SELECT id, name, version
  FROM wf_graph
 WHERE name = ?
   AND version = ?`

	// graphVersionsQuery lists every stored version of a name.
	graphVersionsQuery = `
SELECT version
  FROM wf_graph
 WHERE name = ?
 ORDER BY version`

	// nodeQuery joins each node reference of a graph with its definition
	// and the definition's owning graph. The final column is the computed
	// top-level flag: the reference belongs to the same graph that owns
	// the definition. Guards default to the empty string at the row
	// boundary so the entity never carries a null.
	nodeQuery = `
SELECT ref.id,
       n.id,
       n.name,
       n.type,
       n.is_join,
       n.is_start,
       ref.instance_path,
       g.name,
       g.version,
       COALESCE(n.guard, ''),
       CASE WHEN ref.graph_id = n.graph_id THEN 1 ELSE 0 END
  FROM wf_node_ref ref
  JOIN wf_node n ON n.id = ref.node_id
  JOIN wf_graph g ON g.id = n.graph_id
 WHERE ref.graph_id = ?`

	// arcQuery returns every arc of a graph. Arc rows map straight onto
	// entities; endpoint validation is dag.Build's job.
	arcQuery = `
SELECT id,
       COALESCE(name, ''),
       tail_ref_id,
       head_ref_id
  FROM wf_arc
 WHERE graph_id = ?
 ORDER BY id`
)
