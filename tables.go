// tables.go - fixed tuning and volume lookup tables for wavetable synthesis

package wildtune

// linVolumeCurve maps a MIDI 0..127 controller value to a 0..1024 gain
// scale on a linear curve: f(v) = (v / 127.0) * 1024.0, truncated.
var linVolumeCurve = [128]int16{
	0, 8, 16, 24, 32, 40, 48, 56, 64, 72,
	80, 88, 96, 104, 112, 120, 129, 137, 145, 153,
	161, 169, 177, 185, 193, 201, 209, 217, 225, 233,
	241, 249, 258, 266, 274, 282, 290, 298, 306, 314,
	322, 330, 338, 346, 354, 362, 370, 378, 387, 395,
	403, 411, 419, 427, 435, 443, 451, 459, 467, 475,
	483, 491, 499, 507, 516, 524, 532, 540, 548, 556,
	564, 572, 580, 588, 596, 604, 612, 620, 628, 636,
	645, 653, 661, 669, 677, 685, 693, 701, 709, 717,
	725, 733, 741, 749, 757, 765, 774, 782, 790, 798,
	806, 814, 822, 830, 838, 846, 854, 862, 870, 878,
	886, 894, 903, 911, 919, 927, 935, 943, 951, 959,
	967, 975, 983, 991, 999, 1007, 1015, 1024,
}

// sqrVolumeCurve maps a MIDI 0..127 controller value to a 0..1024 gain
// scale on a squared curve: f(v) = pow(v / 127.0, 2.0) * 1024.0. Selected
// for volume/expression/velocity scaling when MixerConfig.LogVolume is set.
var sqrVolumeCurve = [128]int16{
	0, 0, 0, 0, 1, 1, 2, 3, 4, 5,
	6, 7, 9, 10, 12, 14, 16, 18, 20, 22,
	25, 27, 30, 33, 36, 39, 42, 46, 49, 53,
	57, 61, 65, 69, 73, 77, 82, 86, 91, 96,
	101, 106, 111, 117, 122, 128, 134, 140, 146, 152,
	158, 165, 171, 178, 185, 192, 199, 206, 213, 221,
	228, 236, 244, 251, 260, 268, 276, 284, 293, 302,
	311, 320, 329, 338, 347, 357, 366, 376, 386, 396,
	406, 416, 426, 437, 447, 458, 469, 480, 491, 502,
	514, 525, 537, 549, 560, 572, 585, 597, 609, 622,
	634, 647, 660, 673, 686, 699, 713, 726, 740, 754,
	768, 782, 796, 810, 825, 839, 854, 869, 884, 899,
	914, 929, 944, 960, 976, 992, 1007, 1024,
}

// panVolumeCurve maps a MIDI 0..127 pan/balance value to a 0..1024 gain
// scale on a square-root curve: f(v) = pow(v / 127.0, 0.5) * 1024.0.
var panVolumeCurve = [128]int16{
	0, 90, 128, 157, 181, 203, 222, 240, 257, 272,
	287, 301, 314, 327, 339, 351, 363, 374, 385, 396,
	406, 416, 426, 435, 445, 454, 463, 472, 480, 489,
	497, 505, 514, 521, 529, 537, 545, 552, 560, 567,
	574, 581, 588, 595, 602, 609, 616, 622, 629, 636,
	642, 648, 655, 661, 667, 673, 679, 686, 692, 697,
	703, 709, 715, 721, 726, 732, 738, 743, 749, 754,
	760, 765, 771, 776, 781, 786, 792, 797, 802, 807,
	812, 817, 822, 827, 832, 837, 842, 847, 852, 857,
	862, 866, 871, 876, 880, 885, 890, 894, 899, 904,
	908, 913, 917, 922, 926, 931, 935, 939, 944, 948,
	953, 957, 961, 965, 970, 974, 978, 982, 987, 991,
	995, 999, 1003, 1007, 1011, 1015, 1019, 1024,
}

// centsToPhase holds phase increments for the 1200 cents inside one
// octave. Octave shifts are obtained by right-shifting the looked-up
// value; the table is scaled so that works without a second lookup.
var centsToPhase = [1200]uint32{
	837201792, 837685632, 838169728, 838653568, 839138240, 839623232, 840108480, 840593984,
	841079680, 841565184, 842051648, 842538240, 843025152, 843512320, 843999232, 844486976,
	844975040, 845463360, 845951936, 846440320, 846929536, 847418944, 847908608, 848398656,
	848888960, 849378944, 849869824, 850361024, 850852416, 851344192, 851835584, 852327872,
	852820480, 853313280, 853806464, 854299328, 854793024, 855287040, 855781312, 856275904,
	856770752, 857265344, 857760704, 858256448, 858752448, 859248704, 859744768, 860241600,
	860738752, 861236160, 861733888, 862231360, 862729600, 863228160, 863727104, 864226176,
	864725696, 865224896, 865724864, 866225152, 866725760, 867226688, 867727296, 868228736,
	868730496, 869232576, 869734912, 870236928, 870739904, 871243072, 871746560, 872250368,
	872754496, 873258240, 873762880, 874267840, 874773184, 875278720, 875783936, 876290112,
	876796480, 877303232, 877810176, 878317504, 878824512, 879332416, 879840576, 880349056,
	880857792, 881366272, 881875712, 882385280, 882895296, 883405440, 883915456, 884426304,
	884937408, 885448832, 885960512, 886472512, 886984192, 887496768, 888009728, 888522944,
	889036352, 889549632, 890063680, 890578048, 891092736, 891607680, 892122368, 892637952,
	893153792, 893670016, 894186496, 894703232, 895219648, 895737024, 896254720, 896772672,
	897290880, 897808896, 898327744, 898846912, 899366336, 899886144, 900405568, 900925952,
	901446592, 901967552, 902488768, 903010368, 903531584, 904053760, 904576256, 905099008,
	905622016, 906144896, 906668480, 907192512, 907716800, 908241408, 908765632, 909290816,
	909816256, 910342144, 910868160, 911394624, 911920768, 912447680, 912975104, 913502720,
	914030592, 914558208, 915086784, 915615552, 916144768, 916674176, 917203968, 917733440,
	918263744, 918794496, 919325440, 919856704, 920387712, 920919616, 921451840, 921984320,
	922517184, 923049728, 923583168, 924116928, 924651008, 925185344, 925720000, 926254336,
	926789696, 927325312, 927861120, 928397440, 928933376, 929470208, 930007296, 930544768,
	931082560, 931619968, 932158464, 932697152, 933236160, 933775488, 934315072, 934854464,
	935394688, 935935296, 936476224, 937017344, 937558208, 938100160, 938642304, 939184640,
	939727488, 940269888, 940813312, 941357056, 941900992, 942445440, 942990016, 943534400,
	944079680, 944625280, 945171200, 945717440, 946263360, 946810176, 947357376, 947904832,
	948452672, 949000192, 949548608, 950097280, 950646400, 951195776, 951745472, 952294912,
	952845184, 953395904, 953946880, 954498176, 955049216, 955601088, 956153408, 956705920,
	957258816, 957812032, 958364928, 958918848, 959472960, 960027456, 960582272, 961136768,
	961692224, 962248000, 962804032, 963360448, 963916608, 964473600, 965031040, 965588736,
	966146816, 966705152, 967263168, 967822144, 968381440, 968941120, 969501056, 970060736,
	970621376, 971182272, 971743488, 972305088, 972866368, 973428608, 973991104, 974554048,
	975117312, 975680768, 976243968, 976808192, 977372736, 977937536, 978502656, 979067584,
	979633344, 980199488, 980765888, 981332736, 981899200, 982466688, 983034432, 983602624,
	984171008, 984739776, 985308160, 985877632, 986447360, 987017472, 987587904, 988157952,
	988729088, 989300416, 989872192, 990444224, 991016000, 991588672, 992161728, 992735168,
	993308864, 993882880, 994456576, 995031296, 995606336, 996181696, 996757440, 997332800,
	997909184, 998485888, 999062912, 999640256, 1000217984, 1000795392, 1001373696, 1001952448,
	1002531520, 1003110848, 1003689920, 1004270016, 1004850304, 1005431040, 1006012160, 1006592832,
	1007174592, 1007756608, 1008339008, 1008921792, 1009504768, 1010087552, 1010671296, 1011255360,
	1011839808, 1012424576, 1013009024, 1013594368, 1014180160, 1014766272, 1015352768, 1015938880,
	1016526016, 1017113472, 1017701248, 1018289408, 1018877824, 1019465984, 1020055104, 1020644672,
	1021234496, 1021824768, 1022414528, 1023005440, 1023596608, 1024188160, 1024780096, 1025371584,
	1025964160, 1026557120, 1027150336, 1027744000, 1028337920, 1028931520, 1029526144, 1030121152,
	1030716480, 1031312128, 1031907456, 1032503808, 1033100480, 1033697536, 1034294912, 1034892032,
	1035490048, 1036088512, 1036687232, 1037286336, 1037885824, 1038484928, 1039085056, 1039685632,
	1040286464, 1040887680, 1041488448, 1042090368, 1042692608, 1043295168, 1043898176, 1044501440,
	1045104384, 1045708288, 1046312640, 1046917376, 1047522368, 1048127040, 1048732800, 1049338816,
	1049945280, 1050552128, 1051158528, 1051765952, 1052373824, 1052982016, 1053590592, 1054199424,
	1054807936, 1055417600, 1056027456, 1056637760, 1057248448, 1057858752, 1058470016, 1059081728,
	1059693824, 1060306304, 1060918336, 1061531392, 1062144896, 1062758656, 1063372928, 1063987392,
	1064601664, 1065216896, 1065832448, 1066448448, 1067064704, 1067680704, 1068297728, 1068915136,
	1069532864, 1070150976, 1070768640, 1071387520, 1072006720, 1072626240, 1073246080, 1073866368,
	1074486272, 1075107200, 1075728512, 1076350208, 1076972160, 1077593856, 1078216704, 1078839680,
	1079463296, 1080087040, 1080710528, 1081335168, 1081960064, 1082585344, 1083211008, 1083836928,
	1084462592, 1085089280, 1085716352, 1086343936, 1086971648, 1087599104, 1088227712, 1088856576,
	1089485824, 1090115456, 1090745472, 1091375104, 1092005760, 1092636928, 1093268352, 1093900160,
	1094531584, 1095164160, 1095796992, 1096430336, 1097064064, 1097697280, 1098331648, 1098966400,
	1099601536, 1100237056, 1100872832, 1101508224, 1102144768, 1102781824, 1103419136, 1104056832,
	1104694144, 1105332608, 1105971328, 1106610432, 1107249920, 1107889152, 1108529408, 1109170048,
	1109811072, 1110452352, 1111094144, 1111735552, 1112377984, 1113020928, 1113664128, 1114307712,
	1114950912, 1115595264, 1116240000, 1116885120, 1117530624, 1118175744, 1118821888, 1119468416,
	1120115456, 1120762752, 1121410432, 1122057856, 1122706176, 1123355136, 1124004224, 1124653824,
	1125303040, 1125953408, 1126604160, 1127255168, 1127906560, 1128557696, 1129209984, 1129862528,
	1130515456, 1131168768, 1131822592, 1132475904, 1133130368, 1133785216, 1134440448, 1135096064,
	1135751296, 1136407680, 1137064448, 1137721472, 1138379008, 1139036800, 1139694336, 1140353024,
	1141012096, 1141671424, 1142331264, 1142990592, 1143651200, 1144312192, 1144973440, 1145635200,
	1146296448, 1146958976, 1147621760, 1148285056, 1148948608, 1149612672, 1150276224, 1150940928,
	1151606144, 1152271616, 1152937600, 1153603072, 1154269824, 1154936832, 1155604352, 1156272128,
	1156939648, 1157608192, 1158277248, 1158946560, 1159616384, 1160286464, 1160956288, 1161627264,
	1162298624, 1162970240, 1163642368, 1164314112, 1164987008, 1165660160, 1166333824, 1167007872,
	1167681536, 1168356352, 1169031552, 1169707136, 1170383104, 1171059584, 1171735552, 1172412672,
	1173090304, 1173768192, 1174446592, 1175124480, 1175803648, 1176483072, 1177163008, 1177843328,
	1178523264, 1179204352, 1179885824, 1180567680, 1181249920, 1181932544, 1182614912, 1183298304,
	1183982208, 1184666368, 1185351040, 1186035328, 1186720640, 1187406464, 1188092672, 1188779264,
	1189466368, 1190152960, 1190840832, 1191528960, 1192217600, 1192906624, 1193595136, 1194285056,
	1194975232, 1195665792, 1196356736, 1197047296, 1197739136, 1198431360, 1199123968, 1199816960,
	1200510336, 1201203328, 1201897600, 1202592128, 1203287040, 1203982464, 1204677504, 1205373696,
	1206070272, 1206767232, 1207464704, 1208161664, 1208859904, 1209558528, 1210257536, 1210956928,
	1211656832, 1212356224, 1213056768, 1213757952, 1214459392, 1215161216, 1215862656, 1216565376,
	1217268352, 1217971840, 1218675712, 1219379200, 1220083840, 1220788992, 1221494528, 1222200448,
	1222906752, 1223612672, 1224319872, 1225027456, 1225735424, 1226443648, 1227151616, 1227860864,
	1228570496, 1229280512, 1229990912, 1230700928, 1231412096, 1232123776, 1232835840, 1233548288,
	1234261248, 1234973696, 1235687424, 1236401536, 1237116032, 1237831040, 1238545536, 1239261312,
	1239977472, 1240694144, 1241411072, 1242128512, 1242845568, 1243563776, 1244282496, 1245001600,
	1245721088, 1246440192, 1247160448, 1247881216, 1248602368, 1249324032, 1250045184, 1250767616,
	1251490432, 1252213632, 1252937344, 1253661440, 1254385152, 1255110016, 1255835392, 1256561152,
	1257287424, 1258013184, 1258740096, 1259467648, 1260195456, 1260923648, 1261651584, 1262380800,
	1263110272, 1263840256, 1264570624, 1265301504, 1266031872, 1266763520, 1267495552, 1268227968,
	1268961024, 1269693440, 1270427264, 1271161472, 1271896064, 1272631168, 1273365760, 1274101632,
	1274838016, 1275574784, 1276311808, 1277049472, 1277786624, 1278525056, 1279264000, 1280003328,
	1280743040, 1281482368, 1282222976, 1282963968, 1283705344, 1284447232, 1285188736, 1285931392,
	1286674560, 1287418240, 1288162176, 1288906624, 1289650688, 1290395904, 1291141760, 1291887872,
	1292634496, 1293380608, 1294128128, 1294875904, 1295624320, 1296373120, 1297122304, 1297870976,
	1298621056, 1299371520, 1300122496, 1300873856, 1301624832, 1302376960, 1303129600, 1303882752,
	1304636288, 1305389312, 1306143872, 1306898688, 1307654016, 1308409600, 1309165696, 1309921536,
	1310678528, 1311435904, 1312193920, 1312952192, 1313710080, 1314469248, 1315228928, 1315988992,
	1316749568, 1317509632, 1318271104, 1319032960, 1319795200, 1320557952, 1321321088, 1322083840,
	1322847872, 1323612416, 1324377216, 1325142656, 1325907584, 1326673920, 1327440512, 1328207744,
	1328975360, 1329742464, 1330510976, 1331279872, 1332049152, 1332819072, 1333589248, 1334359168,
	1335130240, 1335901824, 1336673920, 1337446400, 1338218368, 1338991744, 1339765632, 1340539904,
	1341314560, 1342088832, 1342864512, 1343640576, 1344417024, 1345193984, 1345971456, 1346748416,
	1347526656, 1348305408, 1349084672, 1349864320, 1350643456, 1351424000, 1352205056, 1352986496,
	1353768448, 1354550784, 1355332608, 1356115968, 1356899712, 1357683840, 1358468480, 1359252608,
	1360038144, 1360824192, 1361610624, 1362397440, 1363183872, 1363971712, 1364760064, 1365548672,
	1366337792, 1367127424, 1367916672, 1368707200, 1369498240, 1370289664, 1371081472, 1371873024,
	1372665856, 1373459072, 1374252800, 1375047040, 1375840768, 1376635904, 1377431552, 1378227584,
	1379024000, 1379820928, 1380617472, 1381415296, 1382213760, 1383012480, 1383811840, 1384610560,
	1385410816, 1386211456, 1387012480, 1387814144, 1388615168, 1389417728, 1390220672, 1391024128,
	1391827968, 1392632320, 1393436288, 1394241536, 1395047296, 1395853568, 1396660224, 1397466368,
	1398274048, 1399082112, 1399890688, 1400699648, 1401508224, 1402318080, 1403128576, 1403939456,
	1404750848, 1405562624, 1406374016, 1407186816, 1408000000, 1408813696, 1409627904, 1410441728,
	1411256704, 1412072320, 1412888320, 1413704960, 1414521856, 1415338368, 1416156288, 1416974720,
	1417793664, 1418612992, 1419431808, 1420252160, 1421072896, 1421894144, 1422715904, 1423537280,
	1424359808, 1425183104, 1426006784, 1426830848, 1427655296, 1428479488, 1429305088, 1430131072,
	1430957568, 1431784576, 1432611072, 1433438976, 1434267392, 1435096192, 1435925632, 1436754432,
	1437584768, 1438415616, 1439246848, 1440078720, 1440910848, 1441742720, 1442575872, 1443409664,
	1444243584, 1445078400, 1445912576, 1446748032, 1447584256, 1448420864, 1449257856, 1450094464,
	1450932480, 1451771008, 1452609920, 1453449472, 1454289408, 1455128960, 1455969920, 1456811264,
	1457653248, 1458495616, 1459337600, 1460180864, 1461024768, 1461869056, 1462713984, 1463558272,
	1464404096, 1465250304, 1466097152, 1466944384, 1467792128, 1468639488, 1469488256, 1470337408,
	1471187200, 1472037376, 1472887168, 1473738368, 1474589952, 1475442304, 1476294912, 1477148160,
	1478000768, 1478854912, 1479709696, 1480564608, 1481420288, 1482275456, 1483132160, 1483989248,
	1484846976, 1485704960, 1486562688, 1487421696, 1488281344, 1489141504, 1490002048, 1490863104,
	1491723776, 1492585856, 1493448448, 1494311424, 1495175040, 1496038144, 1496902656, 1497767808,
	1498633344, 1499499392, 1500365056, 1501232128, 1502099712, 1502967808, 1503836416, 1504705536,
	1505574016, 1506444032, 1507314688, 1508185856, 1509057408, 1509928576, 1510801280, 1511674240,
	1512547840, 1513421952, 1514295680, 1515170816, 1516046464, 1516922624, 1517799296, 1518676224,
	1519552896, 1520431104, 1521309824, 1522188928, 1523068800, 1523948032, 1524828672, 1525709824,
	1526591616, 1527473792, 1528355456, 1529238784, 1530122496, 1531006720, 1531891712, 1532776832,
	1533661824, 1534547968, 1535434880, 1536322304, 1537210112, 1538097408, 1538986368, 1539875840,
	1540765696, 1541656192, 1542547072, 1543437440, 1544329472, 1545221888, 1546114944, 1547008384,
	1547901440, 1548796032, 1549691136, 1550586624, 1551482752, 1552378368, 1553275520, 1554173184,
	1555071232, 1555970048, 1556869248, 1557767936, 1558668288, 1559568896, 1560470272, 1561372032,
	1562273408, 1563176320, 1564079616, 1564983424, 1565888000, 1566791808, 1567697408, 1568603392,
	1569509760, 1570416896, 1571324416, 1572231424, 1573140096, 1574049152, 1574958976, 1575869184,
	1576778752, 1577689984, 1578601728, 1579514112, 1580426880, 1581339264, 1582253056, 1583167488,
	1584082432, 1584997888, 1585913984, 1586829440, 1587746304, 1588663936, 1589582080, 1590500736,
	1591418880, 1592338560, 1593258752, 1594179584, 1595100928, 1596021632, 1596944000, 1597866880,
	1598790272, 1599714304, 1600638848, 1601562752, 1602488320, 1603414272, 1604340992, 1605268224,
	1606194816, 1607123072, 1608051968, 1608981120, 1609911040, 1610841344, 1611771264, 1612702848,
	1613634688, 1614567168, 1615500288, 1616432896, 1617367040, 1618301824, 1619237120, 1620172800,
	1621108096, 1622044928, 1622982272, 1623920128, 1624858752, 1625797632, 1626736256, 1627676416,
	1628616960, 1629558272, 1630499968, 1631441152, 1632384000, 1633327232, 1634271232, 1635215744,
	1636159744, 1637105152, 1638051328, 1638998016, 1639945088, 1640892928, 1641840128, 1642788992,
	1643738368, 1644688384, 1645638784, 1646588672, 1647540352, 1648492416, 1649445120, 1650398464,
	1651351168, 1652305408, 1653260288, 1654215808, 1655171712, 1656128256, 1657084288, 1658041856,
	1659000064, 1659958784, 1660918272, 1661876992, 1662837376, 1663798400, 1664759936, 1665721984,
	1666683520, 1667646720, 1668610560, 1669574784, 1670539776, 1671505024, 1672470016, 1673436544,
}
