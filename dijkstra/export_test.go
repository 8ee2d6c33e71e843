package dijkstra

// ReconstructPath exposes reconstructPath to the external test package.
var ReconstructPath = reconstructPath
