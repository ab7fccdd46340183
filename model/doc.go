// Package model defines the value types shared by the clustering packages.
//
// # Types
//
//   - Point: an (x, y) pair of integers with no identity beyond its value
//   - Cluster: points in assignment order
//   - ClusterSet: exactly k clusters indexed 0..k-1
//
// A ClusterSet compares with Equal, which is strict: the same number of
// clusters and, per index, the same points in the same order.
//
//	set := model.NewClusterSet(2)
//	set[0] = append(set[0], model.Point{X: 1, Y: 2})
//	fmt.Println(set[0][0]) // (1, 2)
package model
